package bench

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Defaults for an unconfigured Runner.
const (
	DefaultConcurrency       = 10
	DefaultMessagesPerStream = 100
	DefaultPayloadBytes      = 1024
)

// Result is the outcome of benchmarking one call shape.
type Result struct {
	Name      string
	Streams   int
	Requests  int
	Responses int
	Errors    int
	Duration  time.Duration
	Latency   LatencySummary

	RequestsPerSecond  float64
	ResponsesPerSecond float64
	SuccessRate        float64
}

// Runner measures latency and throughput of the echo service, one call shape
// at a time, over a configurable number of concurrent streams.
type Runner struct {
	serverAddr        string
	concurrency       int
	messagesPerStream int
	payloadBytes      int

	conn *grpc.ClientConn
	echo echopb.EchoServiceClient
}

// Cfg configures a Runner.
type Cfg func(*Runner) error

// WithServerAddr sets the server address to benchmark against.
func WithServerAddr(addr string) Cfg {
	return func(r *Runner) error {
		r.serverAddr = addr
		return nil
	}
}

// WithServerPort sets the server port to benchmark against on localhost.
func WithServerPort(p uint16) Cfg {
	return func(r *Runner) error {
		r.serverAddr = fmt.Sprintf("localhost:%d", p)
		return nil
	}
}

// WithConcurrency sets the number of concurrent streams per shape.
func WithConcurrency(n int) Cfg {
	return func(r *Runner) error {
		if n <= 0 {
			return errors.New("concurrency must be positive")
		}
		r.concurrency = n
		return nil
	}
}

// WithMessagesPerStream sets how many messages each stream sends.
func WithMessagesPerStream(n int) Cfg {
	return func(r *Runner) error {
		if n <= 0 {
			return errors.New("messages per stream must be positive")
		}
		r.messagesPerStream = n
		return nil
	}
}

// WithPayloadBytes sets the payload size of each message.
func WithPayloadBytes(n int) Cfg {
	return func(r *Runner) error {
		if n <= 0 {
			return errors.New("payload size must be positive")
		}
		r.payloadBytes = n
		return nil
	}
}

// NewRunner creates a Runner with the given configuration.
func NewRunner(cfgs ...Cfg) (*Runner, error) {
	runner := &Runner{
		serverAddr:        "localhost:8080",
		concurrency:       DefaultConcurrency,
		messagesPerStream: DefaultMessagesPerStream,
		payloadBytes:      DefaultPayloadBytes,
	}
	for _, cfg := range cfgs {
		if err := cfg(runner); err != nil {
			return nil, errors.Wrap(err, "apply Runner cfg failed")
		}
	}
	return runner, nil
}

// Connect establishes the connection to the server.
func (r *Runner) Connect(ctx context.Context) error {
	conn, err := grpc.DialContext(ctx,
		r.serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return errors.Wrapf(err, "connect to %s failed", r.serverAddr)
	}
	r.conn = conn
	r.echo = echopb.NewEchoServiceClient(conn)
	return nil
}

// Close tears the connection down.
func (r *Runner) Close() error {
	if r.conn == nil {
		return nil
	}
	return errors.Wrap(r.conn.Close(), "close runner connection failed")
}

func (r *Runner) payload() string {
	return strings.Repeat("x", r.payloadBytes)
}

// Run benchmarks all four call shapes in turn.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	shapes := []struct {
		name string
		task func(context.Context) (int, int, error)
	}{
		{"client_stream", r.clientStreamTask},
		{"server_stream", r.serverStreamTask},
		{"bidi_sync", r.bidiSyncTask},
		{"bidi_async", r.bidiAsyncTask},
	}
	results := make([]Result, 0, len(shapes))
	for _, shape := range shapes {
		if ctx.Err() != nil {
			return results, errors.Wrap(ctx.Err(), "benchmark interrupted")
		}
		logger.WithField("shape", shape.name).Info("benchmark started")
		results = append(results, r.measure(ctx, shape.name, shape.task))
	}
	return results, nil
}

// measure runs the task on the configured number of concurrent streams and
// aggregates one Result. Each sample is the duration of one whole stream.
func (r *Runner) measure(ctx context.Context, name string, task func(context.Context) (int, int, error)) Result {
	var mu sync.Mutex
	var latencies []time.Duration
	var requests, responses, errCount int

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(r.concurrency)
	for i := 0; i < r.concurrency; i++ {
		go func() {
			defer wg.Done()
			streamStart := time.Now()
			sent, received, err := task(ctx)
			elapsed := time.Since(streamStart)

			mu.Lock()
			defer mu.Unlock()
			requests += sent
			responses += received
			if err != nil {
				errCount++
				logger.WithError(err).WithField("shape", name).Warning("benchmark stream failed")
				return
			}
			latencies = append(latencies, elapsed)
		}()
	}
	wg.Wait()
	duration := time.Since(start)

	result := Result{
		Name:      name,
		Streams:   r.concurrency,
		Requests:  requests,
		Responses: responses,
		Errors:    errCount,
		Duration:  duration,
		Latency:   Summarise(latencies),
	}
	if secs := duration.Seconds(); secs > 0 {
		result.RequestsPerSecond = float64(requests) / secs
		result.ResponsesPerSecond = float64(responses) / secs
	}
	result.SuccessRate = float64(r.concurrency-errCount) / float64(r.concurrency)
	return result
}

func (r *Runner) clientStreamTask(ctx context.Context) (int, int, error) {
	stream, err := r.echo.EchoClientStream(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(err, "open client stream failed")
	}
	payload := r.payload()
	sent := 0
	for i := 0; i < r.messagesPerStream; i++ {
		if err := stream.Send(&echopb.EchoRequest{Message: payload}); err != nil {
			return sent, 0, errors.Wrap(err, "send failed")
		}
		sent++
	}
	if _, err := stream.CloseAndRecv(); err != nil {
		return sent, 0, errors.Wrap(err, "close and receive failed")
	}
	return sent, 1, nil
}

func (r *Runner) serverStreamTask(ctx context.Context) (int, int, error) {
	stream, err := r.echo.EchoServerStream(ctx, &echopb.EchoRequest{Message: r.payload()})
	if err != nil {
		return 0, 0, errors.Wrap(err, "open server stream failed")
	}
	received := 0
	for {
		_, err := stream.Recv()
		if err == io.EOF {
			return 1, received, nil
		}
		if err != nil {
			return 1, received, errors.Wrap(err, "receive failed")
		}
		received++
	}
}

// duplexStream is the common surface of the two bidirectional stream clients.
type duplexStream interface {
	Send(*echopb.EchoRequest) error
	Recv() (*echopb.EchoResponse, error)
	CloseSend() error
}

func (r *Runner) bidiTask(ctx context.Context, stream duplexStream) (int, int, error) {
	payload := r.payload()
	sendErr := make(chan error, 1)
	go func() {
		defer close(sendErr)
		for i := 0; i < r.messagesPerStream; i++ {
			if err := stream.Send(&echopb.EchoRequest{Message: payload}); err != nil {
				sendErr <- errors.Wrap(err, "send failed")
				return
			}
		}
		if err := stream.CloseSend(); err != nil {
			sendErr <- errors.Wrap(err, "close send failed")
		}
	}()

	received := 0
	for {
		_, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return r.messagesPerStream, received, errors.Wrap(err, "receive failed")
		}
		received++
	}
	if err := <-sendErr; err != nil {
		return r.messagesPerStream, received, err
	}
	return r.messagesPerStream, received, nil
}

func (r *Runner) bidiSyncTask(ctx context.Context) (int, int, error) {
	stream, err := r.echo.EchoBidirectionalStreamSync(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(err, "open sync stream failed")
	}
	return r.bidiTask(ctx, stream)
}

func (r *Runner) bidiAsyncTask(ctx context.Context) (int, int, error) {
	stream, err := r.echo.EchoBidirectionalStreamAsync(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(err, "open async stream failed")
	}
	return r.bidiTask(ctx, stream)
}
