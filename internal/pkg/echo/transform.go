package echo

import (
	"context"
	"fmt"
)

// Transform derives the outbound message text from an inbound one in the
// processing stage of the asynchronous pipeline. A Transform returning an
// error aborts the call with an internal status.
type Transform func(ctx context.Context, msg string) (string, error)

// AsyncEcho is the default Transform.
func AsyncEcho(_ context.Context, msg string) (string, error) {
	return fmt.Sprintf("Async Echo (processed): %s", msg), nil
}
