package bench

import (
	"context"
	"net"
	"testing"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal/pkg/echo"
	"echostream/internal/pkg/server"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func startServer(t *testing.T) string {
	handler, err := echo.NewHandler(
		echo.WithProcessDelay(0),
		echo.WithSendInterval(0),
	)
	require.NoError(t, err)
	svc, err := server.NewServer(server.WithHandler(handler))
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	grpcServer := grpc.NewServer()
	echopb.RegisterEchoServiceServer(grpcServer, svc)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)
	return lis.Addr().String()
}

func TestRun(t *testing.T) {
	addr := startServer(t)
	r, err := NewRunner(
		WithServerAddr(addr),
		WithConcurrency(2),
		WithMessagesPerStream(3),
		WithPayloadBytes(16),
	)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, r.Connect(ctx))
	defer func() {
		require.NoError(t, r.Close())
	}()

	results, err := r.Run(ctx)
	require.NoError(t, err)
	require.Len(t, results, 4)

	byName := make(map[string]Result, len(results))
	for _, res := range results {
		require.Zero(t, res.Errors)
		require.Equal(t, 2, res.Streams)
		require.Equal(t, 1.0, res.SuccessRate)
		require.Positive(t, res.Duration)
		byName[res.Name] = res
	}

	// One summary response per client stream, fan-out per server stream,
	// one response per request on both duplex shapes.
	require.Equal(t, 6, byName["client_stream"].Requests)
	require.Equal(t, 2, byName["client_stream"].Responses)
	require.Equal(t, 2, byName["server_stream"].Requests)
	require.Equal(t, 2*echo.DefaultFanOut, byName["server_stream"].Responses)
	require.Equal(t, 6, byName["bidi_sync"].Requests)
	require.Equal(t, 6, byName["bidi_sync"].Responses)
	require.Equal(t, 6, byName["bidi_async"].Requests)
	require.Equal(t, 6, byName["bidi_async"].Responses)
}

func TestRunnerCfgValidation(t *testing.T) {
	_, err := NewRunner(WithConcurrency(0))
	require.Error(t, err)
	_, err = NewRunner(WithMessagesPerStream(0))
	require.Error(t, err)
	_, err = NewRunner(WithPayloadBytes(0))
	require.Error(t, err)
}
