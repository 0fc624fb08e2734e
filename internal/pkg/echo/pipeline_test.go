package echo

import (
	"context"
	"io"
	"testing"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/api/proto/gen/pb-go/echo/v1/mocks"
	"echostream/internal/pkg/relay"
	"echostream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBidiAsyncPreservesOrder(t *testing.T) {
	h, err := NewHandler(WithProcessDelay(0))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamAsyncServer(t)
	srv.On("Context").Return(context.Background())
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "a"}, nil).Once()
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "b"}, nil).Once()
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "c"}, nil).Once()
	srv.On("Recv").Return(nil, io.EOF).Once()
	var sent []string
	srv.On("Send", mock.IsType(&echopb.EchoResponse{})).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(0).(*echopb.EchoResponse).GetMessage())
	}).Return(nil).Times(3)

	require.NoError(t, h.BidiAsync(srv))
	require.Equal(t, []string{
		"Async Echo (processed): a",
		"Async Echo (processed): b",
		"Async Echo (processed): c",
	}, sent)
}

func TestBidiAsyncEmptyStream(t *testing.T) {
	h, err := NewHandler(WithProcessDelay(0))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamAsyncServer(t)
	srv.On("Context").Return(context.Background())
	srv.On("Recv").Return(nil, io.EOF).Once()

	require.NoError(t, h.BidiAsync(srv))
}

func TestBidiAsyncProcessingFault(t *testing.T) {
	h, err := NewHandler(
		WithProcessDelay(0),
		WithTransform(func(ctx context.Context, msg string) (string, error) {
			return "", errors.New("transform blew up")
		}),
	)
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamAsyncServer(t)
	srv.On("Context").Return(context.Background())
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "a"}, nil).Once()
	srv.On("Recv").Return(nil, io.EOF).Maybe()

	err = h.BidiAsync(srv)
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestBidiAsyncPeerGone(t *testing.T) {
	h, err := NewHandler(WithProcessDelay(0))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamAsyncServer(t)
	srv.On("Context").Return(context.Background())
	srv.On("Recv").Return(nil, status.Error(codes.Canceled, "context canceled")).Once()

	// A vanished peer winds the pipeline down without a handler error.
	require.NoError(t, h.BidiAsync(srv))
}

func TestBidiAsyncSendFault(t *testing.T) {
	h, err := NewHandler(WithProcessDelay(0))
	require.NoError(t, err)

	srv := mocks.NewEchoService_EchoBidirectionalStreamAsyncServer(t)
	srv.On("Context").Return(context.Background())
	srv.On("Recv").Return(&echopb.EchoRequest{Message: "a"}, nil).Once()
	srv.On("Recv").Return(nil, io.EOF).Maybe()
	srv.On("Send", mock.IsType(&echopb.EchoResponse{})).Return(status.Error(codes.Unavailable, "connection reset")).Once()

	require.Error(t, h.BidiAsync(srv))
}

func TestProcessDropsWhenEmissionGone(t *testing.T) {
	ctx := context.Background()
	sess := session.New()
	sess.Activate()
	p := &pipeline{
		sess:      sess,
		cancel:    func() {},
		inbound:   relay.New[*echopb.EchoRequest](2),
		outbound:  relay.New[*echopb.EchoResponse](2),
		transform: AsyncEcho,
	}
	require.NoError(t, p.inbound.Put(ctx, &echopb.EchoRequest{Message: "orphan"}))
	p.inbound.Close()
	p.outbound.Abandon()

	// Must return rather than wedge, dropping the processed message.
	p.process(ctx)

	_, err := p.outbound.Take(ctx)
	require.ErrorIs(t, err, relay.ErrDrained)
	fault, _ := p.faultState()
	require.NoError(t, fault)
}

func TestEmitStopsOnDrained(t *testing.T) {
	ctx := context.Background()
	sess := session.New()
	sess.Activate()
	p := &pipeline{
		sess:     sess,
		cancel:   func() {},
		outbound: relay.New[*echopb.EchoResponse](2),
	}
	require.NoError(t, p.outbound.Put(ctx, &echopb.EchoResponse{Message: "last"}))
	p.outbound.Close()

	srv := mocks.NewEchoService_EchoBidirectionalStreamAsyncServer(t)
	srv.On("Send", &echopb.EchoResponse{Message: "last"}).Return(nil).Once()

	require.NoError(t, p.emit(ctx, srv))
	require.Equal(t, uint64(1), sess.Responses())
	require.False(t, sess.Cancelled())
}

func TestAsyncEcho(t *testing.T) {
	msg, err := AsyncEcho(context.Background(), "ping")
	require.NoError(t, err)
	require.Equal(t, "Async Echo (processed): ping", msg)
}
