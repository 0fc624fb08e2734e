// Package client implements the client side of the echo service.
//
// A Client connects once and can then exercise each of the four streaming
// call shapes:
//
//   - ClientStream sends several messages and reads back one summary.
//   - ServerStream sends one message and reads back the whole fan-out.
//   - BidiSync converses in lock-step, one response per request.
//   - BidiAsync sends and receives concurrently, with the server free to
//     process at its own pace behind its bounded queues.
//
// The bidirectional shapes run the sending side on its own goroutine and
// collect responses on the caller's goroutine until the server half-closes,
// so a well-behaved server always terminates the call deterministically.
package client
