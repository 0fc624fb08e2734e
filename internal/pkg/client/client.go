package client

import (
	"context"
	"fmt"
	"io"
	"sync"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal/pkg/log"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Defaults for an unconfigured Client.
const (
	DefaultMessageCount   = 3
	DefaultPayload        = "hello"
	DefaultMaxMessageSize = 50 * 1024 * 1024
)

// Client drives the four streaming call shapes of the echo service.
type Client struct {
	serverAddr     string
	messageCount   int
	payload        string
	maxMessageSize int

	conn *grpc.ClientConn
	echo echopb.EchoServiceClient
}

// Cfg configures a Client.
type Cfg func(*Client) error

// WithServerPort sets the server port to connect to on localhost.
func WithServerPort(p uint16) Cfg {
	return func(c *Client) error {
		c.serverAddr = fmt.Sprintf("localhost:%d", p)
		return nil
	}
}

// WithServerAddr sets the full server address to connect to.
func WithServerAddr(addr string) Cfg {
	return func(c *Client) error {
		c.serverAddr = addr
		return nil
	}
}

// WithMessageCount sets how many messages each streaming call sends.
func WithMessageCount(n int) Cfg {
	return func(c *Client) error {
		if n <= 0 {
			return errors.New("message count must be positive")
		}
		c.messageCount = n
		return nil
	}
}

// WithPayload sets the message payload prefix.
func WithPayload(p string) Cfg {
	return func(c *Client) error {
		c.payload = p
		return nil
	}
}

// WithMaxMessageSize sets the maximum in-flight message size.
func WithMaxMessageSize(n int) Cfg {
	return func(c *Client) error {
		if n <= 0 {
			return errors.New("max message size must be positive")
		}
		c.maxMessageSize = n
		return nil
	}
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfgs ...Cfg) (*Client, error) {
	client := &Client{
		serverAddr:     "localhost:8080",
		messageCount:   DefaultMessageCount,
		payload:        DefaultPayload,
		maxMessageSize: DefaultMaxMessageSize,
	}
	for _, cfg := range cfgs {
		if err := cfg(client); err != nil {
			return nil, errors.Wrap(err, "apply Client cfg failed")
		}
	}
	return client, nil
}

// Connect establishes the connection to the server.
func (c *Client) Connect(ctx context.Context) error {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return errors.Wrap(err, "close client connection failed")
		}
	}
	var err error
	c.conn, err = grpc.DialContext(ctx,
		c.serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(c.maxMessageSize),
			grpc.MaxCallSendMsgSize(c.maxMessageSize),
		),
	)
	if err != nil {
		return errors.Wrapf(err, "connect to %s failed", c.serverAddr)
	}
	c.echo = echopb.NewEchoServiceClient(c.conn)
	return nil
}

// Close tears the connection down.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return errors.Wrap(c.conn.Close(), "close client connection failed")
}

func (c *Client) message(i int) *echopb.EchoRequest {
	return &echopb.EchoRequest{
		Message: fmt.Sprintf("%s %d", c.payload, i),
	}
}

// ClientStream sends the configured number of messages and returns the
// server's single summary response.
func (c *Client) ClientStream(ctx context.Context) (string, error) {
	stream, err := c.echo.EchoClientStream(ctx)
	if err != nil {
		return "", errors.Wrap(err, "open client stream failed")
	}
	for i := 1; i <= c.messageCount; i++ {
		if err := stream.Send(c.message(i)); err != nil {
			return "", errors.Wrapf(err, "send message %d failed", i)
		}
	}
	resp, err := stream.CloseAndRecv()
	if err != nil {
		return "", errors.Wrap(err, "close and receive failed")
	}
	return resp.GetMessage(), nil
}

// ServerStream sends one request and returns every response of the
// resulting stream.
func (c *Client) ServerStream(ctx context.Context) ([]string, error) {
	stream, err := c.echo.EchoServerStream(ctx, c.message(1))
	if err != nil {
		return nil, errors.Wrap(err, "open server stream failed")
	}
	var responses []string
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return responses, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "receive response failed")
		}
		responses = append(responses, resp.GetMessage())
	}
}

// duplexStream is the common surface of the two bidirectional stream clients.
type duplexStream interface {
	Send(*echopb.EchoRequest) error
	Recv() (*echopb.EchoResponse, error)
	CloseSend() error
}

// sendRecv pushes the configured number of messages on one goroutine while
// collecting responses on the calling goroutine until end-of-stream.
func (c *Client) sendRecv(ctx context.Context, stream duplexStream) ([]string, error) {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for i := 1; i <= c.messageCount; i++ {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			default:
			}
			msg := c.message(i)
			if err := stream.Send(msg); err != nil {
				errCh <- errors.Wrapf(err, "send message %d failed", i)
				return
			}
			logger.WithFields(log.RequestToFields(msg)).Info("sent message")
		}
		if err := stream.CloseSend(); err != nil {
			errCh <- errors.Wrap(err, "close send failed")
		}
	}()

	var responses []string
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "receive response failed")
		}
		logger.WithFields(log.ResponseToFields(resp)).Info("received message")
		responses = append(responses, resp.GetMessage())
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return responses, nil
}

// BidiSync exercises the synchronous bidirectional endpoint and returns the
// responses in arrival order.
func (c *Client) BidiSync(ctx context.Context) ([]string, error) {
	stream, err := c.echo.EchoBidirectionalStreamSync(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "open sync stream failed")
	}
	return c.sendRecv(ctx, stream)
}

// BidiAsync exercises the asynchronous bidirectional endpoint and returns the
// responses in arrival order.
func (c *Client) BidiAsync(ctx context.Context) ([]string, error) {
	stream, err := c.echo.EchoBidirectionalStreamAsync(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "open async stream failed")
	}
	return c.sendRecv(ctx, stream)
}

// RunAll exercises all four call shapes concurrently, once each, and returns
// the first error encountered.
func (c *Client) RunAll(ctx context.Context) error {
	var wg sync.WaitGroup
	errCh := make(chan error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		summary, err := c.ClientStream(ctx)
		if err != nil {
			errCh <- errors.Wrap(err, "client stream failed")
			return
		}
		logger.WithField("response", summary).Info("client stream completed")
	}()
	go func() {
		defer wg.Done()
		responses, err := c.ServerStream(ctx)
		if err != nil {
			errCh <- errors.Wrap(err, "server stream failed")
			return
		}
		logger.WithField("responses", len(responses)).Info("server stream completed")
	}()
	go func() {
		defer wg.Done()
		responses, err := c.BidiSync(ctx)
		if err != nil {
			errCh <- errors.Wrap(err, "sync stream failed")
			return
		}
		logger.WithField("responses", len(responses)).Info("sync stream completed")
	}()
	go func() {
		defer wg.Done()
		responses, err := c.BidiAsync(ctx)
		if err != nil {
			errCh <- errors.Wrap(err, "async stream failed")
			return
		}
		logger.WithField("responses", len(responses)).Info("async stream completed")
	}()

	wg.Wait()
	close(errCh)
	return <-errCh
}
