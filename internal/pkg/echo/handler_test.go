package echo

import (
	"context"
	"io"
	"testing"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/api/proto/gen/pb-go/echo/v1/mocks"
	"echostream/internal/pkg/session"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClientStreamAggregatesInOrder(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoClientStreamServer(t)
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "a"}, nil).Once()
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "b"}, nil).Once()
	srv.On("Recv").Return(nil, io.EOF).Once()
	srv.On("SendAndClose", &echopb.EchoResponse{
		Message: "Received 2 messages: [a b]",
	}).Return(nil).Once()

	require.NoError(t, h.ClientStream(srv))
}

func TestClientStreamEmpty(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoClientStreamServer(t)
	srv.On("Recv").Return(nil, io.EOF).Once()
	srv.On("SendAndClose", &echopb.EchoResponse{
		Message: "Received 0 messages: []",
	}).Return(nil).Once()

	require.NoError(t, h.ClientStream(srv))
}

func TestClientStreamPeerGone(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoClientStreamServer(t)
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "a"}, nil).Once()
	srv.On("Recv").Return(nil, status.Error(codes.Canceled, "context canceled")).Once()

	require.NoError(t, h.ClientStream(srv))
}

func TestClientStreamRecvFault(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoClientStreamServer(t)
	srv.On("Recv").Return(nil, status.Error(codes.Unavailable, "connection reset")).Once()

	require.Error(t, h.ClientStream(srv))
}

func TestServerStreamFanOut(t *testing.T) {
	h, err := NewHandler(WithFanOut(5), WithSendInterval(0))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoServerStreamServer(t)
	srv.On("Context").Return(context.Background())
	var sent []string
	srv.On("Send", mock.IsType(&echopb.EchoResponse{})).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(0).(*echopb.EchoResponse).GetMessage())
	}).Return(nil).Times(5)

	require.NoError(t, h.ServerStream(&echopb.EchoRequest{Message: "hello"}, srv))
	require.Equal(t, []string{
		"Echo #1: hello",
		"Echo #2: hello",
		"Echo #3: hello",
		"Echo #4: hello",
		"Echo #5: hello",
	}, sent)
}

func TestServerStreamStopsOnCancelledContext(t *testing.T) {
	h, err := NewHandler(WithSendInterval(0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := mocks.NewEchoService_EchoServerStreamServer(t)
	srv.On("Context").Return(ctx)

	// No Send expectation: a dead context yields no responses and no error.
	require.NoError(t, h.ServerStream(&echopb.EchoRequest{Message: "hello"}, srv))
}

func TestServerStreamSendFault(t *testing.T) {
	h, err := NewHandler(WithSendInterval(0))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoServerStreamServer(t)
	srv.On("Context").Return(context.Background())
	srv.On("Send", mock.IsType(&echopb.EchoResponse{})).Return(status.Error(codes.Unavailable, "connection reset")).Once()

	require.Error(t, h.ServerStream(&echopb.EchoRequest{Message: "hello"}, srv))
}

func TestBidiSyncOneForOne(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamSyncServer(t)
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "one"}, nil).Once()
	srv.On("Send", &echopb.EchoResponse{Message: "Sync Echo: one"}).Return(nil).Once()
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "two"}, nil).Once()
	srv.On("Send", &echopb.EchoResponse{Message: "Sync Echo: two"}).Return(nil).Once()
	srv.On("Recv").Return(nil, io.EOF).Once()

	require.NoError(t, h.BidiSync(srv))
}

func TestBidiSyncPeerGone(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamSyncServer(t)
	srv.On("Recv").Return(nil, status.Error(codes.Canceled, "context canceled")).Once()

	require.NoError(t, h.BidiSync(srv))
}

func TestHandlerCfgValidation(t *testing.T) {
	_, err := NewHandler(WithQueueCapacity(0))
	require.Error(t, err)
	_, err = NewHandler(WithFanOut(-1))
	require.Error(t, err)
}

func TestHandlerTracksSessions(t *testing.T) {
	store := session.NewMemoryStore()
	h, err := NewHandler(WithSessionStore(store))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoClientStreamServer(t)
	srv.On("Recv").Run(func(mock.Arguments) {
		require.Equal(t, 1, store.Len())
	}).Return(nil, io.EOF).Once()
	srv.On("SendAndClose", mock.IsType(&echopb.EchoResponse{})).Return(nil).Once()

	require.NoError(t, h.ClientStream(srv))
	require.Equal(t, 0, store.Len())
}
