package echo

import (
	"context"
	"io"
	"sync"
	"time"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal/pkg/log"
	"echostream/internal/pkg/relay"
	"echostream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// requestStream is the inbound side of a duplex stream.
type requestStream interface {
	Recv() (*echopb.EchoRequest, error)
}

// responseStream is the outbound side of a duplex stream.
type responseStream interface {
	Send(*echopb.EchoResponse) error
}

// pipeline carries the per-call state of one asynchronous bidirectional
// stream: the two relay queues, the session, and the first fault observed by
// any stage. The ingestion and processing stages run on their own goroutines;
// emission runs on the handler goroutine, which is also the only place a
// terminal status is reported from.
type pipeline struct {
	sess     *session.Session
	cancel   context.CancelFunc
	inbound  *relay.Queue[*echopb.EchoRequest]
	outbound *relay.Queue[*echopb.EchoResponse]

	processDelay time.Duration
	transform    Transform

	mu         sync.Mutex
	fault      error
	processing bool
}

// setFault records the first fault of the call. processing marks a
// transformation failure as opposed to a transport one.
func (p *pipeline) setFault(err error, processing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fault == nil {
		p.fault = err
		p.processing = processing
	}
}

func (p *pipeline) faultState() (error, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fault, p.processing
}

// ingest pulls requests from the stream into the inbound queue until
// end-of-input, a receive fault, or cancellation. Whatever the exit reason,
// it closes the inbound queue exactly once so the processing stage always
// observes completion.
func (p *pipeline) ingest(ctx context.Context, srv requestStream) {
	defer p.inbound.Close()
	for {
		req, err := srv.Recv()
		if err == io.EOF {
			p.sess.Drain()
			return
		}
		if err != nil {
			if !peerGone(err) {
				p.setFault(errors.Wrap(err, "receive request failed"), false)
			}
			p.sess.Cancel()
			p.cancel()
			return
		}
		p.sess.AddRequest()
		logger.WithFields(log.RequestToFields(req)).Debug("received message")
		if err := p.inbound.Put(ctx, req); err != nil {
			return
		}
	}
}

// process consumes the inbound queue, applies the transformation at its own
// pace, and produces onto the outbound queue. It closes the outbound queue on
// every exit path so the emission loop always observes completion, and drops
// the item with a log line when the emission side is already gone.
func (p *pipeline) process(ctx context.Context) {
	defer p.outbound.Close()
	defer p.inbound.Abandon()
	for {
		req, err := p.inbound.Take(ctx)
		if err != nil {
			// Drained or cancelled; either way processing is complete.
			return
		}
		if p.processDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.processDelay):
			}
		}
		msg, err := p.transform(ctx, req.GetMessage())
		if err != nil {
			p.setFault(err, true)
			p.sess.Cancel()
			p.cancel()
			return
		}
		if err := p.outbound.Put(ctx, &echopb.EchoResponse{Message: msg}); err != nil {
			if errors.Is(err, relay.ErrAbandoned) {
				logger.WithField("message", msg).Warning("emission side gone, dropping processed message")
			}
			return
		}
	}
}

// emit drains the outbound queue onto the stream until the queue is drained
// or the call dies. It runs on the handler goroutine and is a single pass: a
// drained queue terminates it deterministically.
func (p *pipeline) emit(ctx context.Context, srv responseStream) error {
	defer p.outbound.Abandon()
	for {
		resp, err := p.outbound.Take(ctx)
		if err != nil {
			if errors.Is(err, relay.ErrDrained) {
				return nil
			}
			// Context ended while waiting: peer inactivity, wind down.
			p.sess.Cancel()
			return nil
		}
		if err := srv.Send(resp); err != nil {
			p.sess.Cancel()
			p.cancel()
			if peerGone(err) {
				return nil
			}
			return errors.Wrap(err, "send response failed")
		}
		p.sess.AddResponse()
		logger.WithFields(log.ResponseToFields(resp)).Debug("sent message")
	}
}

// BidiAsync runs the decoupled bidirectional pipeline: two goroutines for
// ingestion and processing, emission on the calling goroutine, all three
// observing one shared cancellation context and joined before returning.
func (h *Handler) BidiAsync(srv echopb.EchoService_EchoBidirectionalStreamAsyncServer) error {
	sess := h.begin()
	defer h.end(sess)
	log := logger.WithField("session", sess.ID().String())
	log.Info("async stream started")

	ctx, cancel := context.WithCancel(srv.Context())
	defer cancel()

	p := &pipeline{
		sess:         sess,
		cancel:       cancel,
		inbound:      relay.New[*echopb.EchoRequest](h.queueCapacity),
		outbound:     relay.New[*echopb.EchoResponse](h.queueCapacity),
		processDelay: h.processDelay,
		transform:    h.transform,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.ingest(ctx, srv)
	}()
	go func() {
		defer wg.Done()
		p.process(ctx)
	}()

	emitErr := p.emit(ctx, srv)

	cancel()
	if !waitTimeout(&wg, h.joinTimeout) {
		log.Warning("pipeline goroutines did not stop in time")
	}

	if fault, processing := p.faultState(); fault != nil {
		sess.Finish(session.StateErrored)
		if processing {
			return status.Error(codes.Internal, fault.Error())
		}
		return fault
	}
	if emitErr != nil {
		sess.Finish(session.StateErrored)
		return emitErr
	}
	if sess.Cancelled() {
		sess.Finish(session.StateCancelled)
		log.Info("async stream cancelled")
		return nil
	}
	sess.Finish(session.StateClosed)
	log.WithFields(logrus.Fields{
		"requests":  sess.Requests(),
		"responses": sess.Responses(),
	}).Info("async stream finished")
	return nil
}

// waitTimeout waits for the group for at most d. It reports whether the group
// finished in time.
func waitTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}
