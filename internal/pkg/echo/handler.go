package echo

import (
	"fmt"
	"io"
	"time"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Defaults for the tunable knobs of the handler.
const (
	DefaultQueueCapacity = 10
	DefaultFanOut        = 5
	DefaultProcessDelay  = 200 * time.Millisecond
	DefaultSendInterval  = 100 * time.Millisecond
	DefaultJoinTimeout   = time.Second
)

// Handler implements the echo behaviour behind the EchoService endpoints.
type Handler struct {
	queueCapacity int
	fanOut        int
	processDelay  time.Duration
	sendInterval  time.Duration
	joinTimeout   time.Duration
	transform     Transform
	store         session.Store
}

// Cfg configures a Handler.
type Cfg func(*Handler) error

// WithQueueCapacity sets the capacity of the relay queues of the async pipeline.
func WithQueueCapacity(c int) Cfg {
	return func(h *Handler) error {
		if c <= 0 {
			return errors.New("queue capacity must be positive")
		}
		h.queueCapacity = c
		return nil
	}
}

// WithFanOut sets the number of responses produced per server-stream request.
func WithFanOut(n int) Cfg {
	return func(h *Handler) error {
		if n <= 0 {
			return errors.New("fan-out count must be positive")
		}
		h.fanOut = n
		return nil
	}
}

// WithProcessDelay sets the simulated processing latency of the async pipeline.
func WithProcessDelay(d time.Duration) Cfg {
	return func(h *Handler) error {
		h.processDelay = d
		return nil
	}
}

// WithSendInterval sets the pause between consecutive server-stream responses.
func WithSendInterval(d time.Duration) Cfg {
	return func(h *Handler) error {
		h.sendInterval = d
		return nil
	}
}

// WithJoinTimeout bounds how long the async handler waits for its pipeline
// goroutines after the stream ends.
func WithJoinTimeout(d time.Duration) Cfg {
	return func(h *Handler) error {
		h.joinTimeout = d
		return nil
	}
}

// WithTransform sets the processing stage transformation.
func WithTransform(t Transform) Cfg {
	return func(h *Handler) error {
		h.transform = t
		return nil
	}
}

// WithSessionStore sets the store tracking in-flight call sessions.
func WithSessionStore(store session.Store) Cfg {
	return func(h *Handler) error {
		h.store = store
		return nil
	}
}

// NewHandler creates a Handler with the given configuration.
func NewHandler(cfgs ...Cfg) (*Handler, error) {
	h := &Handler{
		queueCapacity: DefaultQueueCapacity,
		fanOut:        DefaultFanOut,
		processDelay:  DefaultProcessDelay,
		sendInterval:  DefaultSendInterval,
		joinTimeout:   DefaultJoinTimeout,
		transform:     AsyncEcho,
	}
	for _, cfg := range cfgs {
		if err := cfg(h); err != nil {
			return nil, errors.Wrap(err, "apply Handler cfg failed")
		}
	}
	return h, nil
}

// begin creates and activates the session for one call.
func (h *Handler) begin() *session.Session {
	sess := session.New()
	sess.Activate()
	if h.store != nil {
		if err := h.store.Add(sess); err != nil {
			logger.WithError(err).Warning("track session failed")
		}
	}
	return sess
}

// end drops the call's session from the store.
func (h *Handler) end(sess *session.Session) {
	if h.store != nil {
		if err := h.store.Remove(sess.ID()); err != nil {
			logger.WithError(err).Warning("untrack session failed")
		}
	}
}

// peerGone reports whether err means the peer ended the call, as opposed to a
// transport fault.
func peerGone(err error) bool {
	code := status.Code(err)
	return code == codes.Canceled || code == codes.DeadlineExceeded
}

// ClientStream folds every request of the stream into one summary response.
func (h *Handler) ClientStream(srv echopb.EchoService_EchoClientStreamServer) error {
	sess := h.begin()
	defer h.end(sess)
	log := logger.WithField("session", sess.ID().String())
	log.Info("client stream started")

	var messages []string
	for {
		req, err := srv.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if peerGone(err) {
				sess.Cancel()
				sess.Finish(session.StateCancelled)
				log.Warning("client disconnected")
				return nil
			}
			sess.Finish(session.StateErrored)
			return errors.Wrap(err, "receive request failed")
		}
		sess.AddRequest()
		messages = append(messages, req.GetMessage())
	}
	sess.Drain()

	resp := &echopb.EchoResponse{
		Message: fmt.Sprintf("Received %d messages: %v", len(messages), messages),
	}
	if err := srv.SendAndClose(resp); err != nil {
		sess.Finish(session.StateErrored)
		return errors.Wrap(err, "send response failed")
	}
	sess.AddResponse()
	sess.Finish(session.StateClosed)
	log.WithField("requests", sess.Requests()).Info("client stream finished")
	return nil
}

// ServerStream fans one request out into a fixed number of responses,
// stopping early without error if the peer goes away.
func (h *Handler) ServerStream(req *echopb.EchoRequest, srv echopb.EchoService_EchoServerStreamServer) error {
	sess := h.begin()
	defer h.end(sess)
	sess.AddRequest()
	log := logger.WithField("session", sess.ID().String())
	log.Info("server stream started")

	ctx := srv.Context()
	for i := 1; i <= h.fanOut; i++ {
		if ctx.Err() != nil {
			sess.Cancel()
			sess.Finish(session.StateCancelled)
			log.Warning("client disconnected")
			return nil
		}
		resp := &echopb.EchoResponse{
			Message: fmt.Sprintf("Echo #%d: %s", i, req.GetMessage()),
		}
		if err := srv.Send(resp); err != nil {
			if peerGone(err) || ctx.Err() != nil {
				sess.Cancel()
				sess.Finish(session.StateCancelled)
				log.Warning("client disconnected")
				return nil
			}
			sess.Finish(session.StateErrored)
			return errors.Wrap(err, "send response failed")
		}
		sess.AddResponse()
		if h.sendInterval > 0 && i < h.fanOut {
			select {
			case <-ctx.Done():
				sess.Cancel()
				sess.Finish(session.StateCancelled)
				log.Warning("client disconnected")
				return nil
			case <-time.After(h.sendInterval):
			}
		}
	}
	sess.Finish(session.StateClosed)
	log.WithField("responses", sess.Responses()).Info("server stream finished")
	return nil
}

// BidiSync pairs each request with exactly one response before reading the
// next request. Strict 1:1, in order.
func (h *Handler) BidiSync(srv echopb.EchoService_EchoBidirectionalStreamSyncServer) error {
	sess := h.begin()
	defer h.end(sess)
	log := logger.WithField("session", sess.ID().String())
	log.Info("sync stream started")

	for {
		req, err := srv.Recv()
		if err == io.EOF {
			sess.Drain()
			sess.Finish(session.StateClosed)
			log.WithField("requests", sess.Requests()).Info("sync stream finished")
			return nil
		}
		if err != nil {
			if peerGone(err) {
				sess.Cancel()
				sess.Finish(session.StateCancelled)
				log.Warning("client disconnected")
				return nil
			}
			sess.Finish(session.StateErrored)
			return errors.Wrap(err, "receive request failed")
		}
		sess.AddRequest()

		resp := &echopb.EchoResponse{
			Message: fmt.Sprintf("Sync Echo: %s", req.GetMessage()),
		}
		if err := srv.Send(resp); err != nil {
			if peerGone(err) {
				sess.Cancel()
				sess.Finish(session.StateCancelled)
				log.Warning("client disconnected")
				return nil
			}
			sess.Finish(session.StateErrored)
			return errors.Wrap(err, "send response failed")
		}
		sess.AddResponse()
	}
}
