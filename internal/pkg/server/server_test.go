package server

import (
	"context"
	"fmt"
	"io"
	"testing"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal/pkg/echo"
	"echostream/internal/pkg/session"

	"github.com/fullstorydev/grpchan/inprocgrpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// newTestClient wires a server with fast timings to an in-process channel.
func newTestClient(t *testing.T, cfgs ...echo.Cfg) (echopb.EchoServiceClient, session.Store) {
	store := session.NewMemoryStore()
	cfgs = append([]echo.Cfg{
		echo.WithProcessDelay(0),
		echo.WithSendInterval(0),
		echo.WithSessionStore(store),
	}, cfgs...)
	handler, err := echo.NewHandler(cfgs...)
	require.NoError(t, err)
	svc, err := NewServer(
		WithHandler(handler),
		WithSessionStore(store),
	)
	require.NoError(t, err)

	ch := &inprocgrpc.Channel{}
	echopb.RegisterEchoServiceServer(ch, svc)
	return echopb.NewEchoServiceClient(ch), store
}

func TestEchoClientStream(t *testing.T) {
	cli, store := newTestClient(t)
	ctx := context.Background()

	stream, err := cli.EchoClientStream(ctx)
	require.NoError(t, err)
	for _, msg := range []string{"one", "two", "three"} {
		require.NoError(t, stream.Send(&echopb.EchoRequest{Message: msg}))
	}
	resp, err := stream.CloseAndRecv()
	require.NoError(t, err)
	require.Equal(t, "Received 3 messages: [one two three]", resp.GetMessage())
	require.Equal(t, 0, store.Len())
}

func TestEchoServerStream(t *testing.T) {
	cli, store := newTestClient(t)
	ctx := context.Background()

	stream, err := cli.EchoServerStream(ctx, &echopb.EchoRequest{Message: "hello"})
	require.NoError(t, err)
	var got []string
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, resp.GetMessage())
	}
	require.Equal(t, []string{
		"Echo #1: hello",
		"Echo #2: hello",
		"Echo #3: hello",
		"Echo #4: hello",
		"Echo #5: hello",
	}, got)
	require.Equal(t, 0, store.Len())
}

func TestEchoBidirectionalStreamSync(t *testing.T) {
	cli, store := newTestClient(t)
	ctx := context.Background()

	stream, err := cli.EchoBidirectionalStreamSync(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		msg := fmt.Sprintf("msg-%d", i)
		require.NoError(t, stream.Send(&echopb.EchoRequest{Message: msg}))
		resp, err := stream.Recv()
		require.NoError(t, err)
		require.Equal(t, "Sync Echo: "+msg, resp.GetMessage())
	}
	require.NoError(t, stream.CloseSend())
	_, err = stream.Recv()
	require.Equal(t, io.EOF, err)
	require.Equal(t, 0, store.Len())
}

func TestEchoBidirectionalStreamAsync(t *testing.T) {
	cli, store := newTestClient(t)
	ctx := context.Background()

	stream, err := cli.EchoBidirectionalStreamAsync(ctx)
	require.NoError(t, err)
	sent := []string{"a", "b", "c", "d"}
	for _, msg := range sent {
		require.NoError(t, stream.Send(&echopb.EchoRequest{Message: msg}))
	}
	require.NoError(t, stream.CloseSend())

	var got []string
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, resp.GetMessage())
	}
	require.Equal(t, []string{
		"Async Echo (processed): a",
		"Async Echo (processed): b",
		"Async Echo (processed): c",
		"Async Echo (processed): d",
	}, got)
	require.Equal(t, 0, store.Len())
}

func TestSyncAndAsyncEchoEveryMessage(t *testing.T) {
	cli, _ := newTestClient(t)
	ctx := context.Background()
	inputs := []string{"x", "y", "z"}

	syncStream, err := cli.EchoBidirectionalStreamSync(ctx)
	require.NoError(t, err)
	var syncCount int
	for _, msg := range inputs {
		require.NoError(t, syncStream.Send(&echopb.EchoRequest{Message: msg}))
		_, err := syncStream.Recv()
		require.NoError(t, err)
		syncCount++
	}
	require.NoError(t, syncStream.CloseSend())
	_, err = syncStream.Recv()
	require.Equal(t, io.EOF, err)

	asyncStream, err := cli.EchoBidirectionalStreamAsync(ctx)
	require.NoError(t, err)
	for _, msg := range inputs {
		require.NoError(t, asyncStream.Send(&echopb.EchoRequest{Message: msg}))
	}
	require.NoError(t, asyncStream.CloseSend())
	var asyncCount int
	for {
		_, err := asyncStream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		asyncCount++
	}

	// Both duplex shapes answer every request exactly once.
	require.Equal(t, len(inputs), syncCount)
	require.Equal(t, len(inputs), asyncCount)
}

func TestEchoBidirectionalStreamAsyncCancelled(t *testing.T) {
	cli, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())

	stream, err := cli.EchoBidirectionalStreamAsync(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&echopb.EchoRequest{Message: "doomed"}))
	cancel()

	for {
		_, err := stream.Recv()
		if err != nil {
			require.Equal(t, codes.Canceled, status.Code(err))
			break
		}
	}
}

func TestEchoBidirectionalStreamAsyncProcessingFault(t *testing.T) {
	cli, _ := newTestClient(t, echo.WithTransform(func(ctx context.Context, msg string) (string, error) {
		return "", fmt.Errorf("cannot process %q", msg)
	}))
	ctx := context.Background()

	stream, err := cli.EchoBidirectionalStreamAsync(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&echopb.EchoRequest{Message: "bad"}))
	require.NoError(t, stream.CloseSend())

	for {
		_, err := stream.Recv()
		if err != nil {
			require.Equal(t, codes.Internal, status.Code(err))
			break
		}
	}
}

func TestServerDefaults(t *testing.T) {
	svc, err := NewServer()
	require.NoError(t, err)
	require.NotNil(t, svc.Sessions())
	require.Equal(t, 0, svc.Sessions().Len())
}
