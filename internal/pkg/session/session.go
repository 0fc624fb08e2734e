package session

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// State is the lifecycle state of a stream session.
type State int32

// Session lifecycle: Created -> Active -> {Draining -> Closed | Cancelled | Errored}.
const (
	StateCreated State = iota
	StateActive
	StateDraining
	StateClosed
	StateCancelled
	StateErrored
)

// Terminal reports whether the state ends the call.
func (s State) Terminal() bool {
	return s == StateClosed || s == StateCancelled || s == StateErrored
}

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateActive:
		return "active"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	case StateCancelled:
		return "cancelled"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// Session is the per-call state of one streaming RPC. The handler owns the
// session for the lifetime of the call; the pipeline goroutines only observe
// the cancellation flag and each write their own counter, so everything here
// is atomic rather than lock-guarded.
type Session struct {
	id uuid.UUID

	state     atomic.Int32
	cancelled atomic.Bool
	requests  atomic.Uint64
	responses atomic.Uint64
}

// New creates a Session in the Created state with a fresh identifier.
func New() *Session {
	return &Session{id: uuid.New()}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Activate moves the session from Created to Active. It reports whether the
// transition happened.
func (s *Session) Activate() bool {
	return s.state.CompareAndSwap(int32(StateCreated), int32(StateActive))
}

// Drain moves the session from Active to Draining, entered when end-of-input
// has been observed but outbound work remains. It reports whether the
// transition happened.
func (s *Session) Drain() bool {
	return s.state.CompareAndSwap(int32(StateActive), int32(StateDraining))
}

// Finish moves the session into the given terminal state. A session finishes
// exactly once; Finish reports false if the session was already terminal or
// the target state is not terminal.
func (s *Session) Finish(target State) bool {
	if !target.Terminal() {
		return false
	}
	for {
		current := s.state.Load()
		if State(current).Terminal() {
			return false
		}
		if s.state.CompareAndSwap(current, int32(target)) {
			return true
		}
	}
}

// Cancel raises the cancellation flag. The flag is monotonic: once raised it
// is never lowered, and raising it again is a no-op.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

// Cancelled reports whether the cancellation flag has been raised.
func (s *Session) Cancelled() bool {
	return s.cancelled.Load()
}

// AddRequest records one received request.
func (s *Session) AddRequest() {
	s.requests.Add(1)
}

// Requests returns the number of requests received so far.
func (s *Session) Requests() uint64 {
	return s.requests.Load()
}

// AddResponse records one sent response.
func (s *Session) AddResponse() {
	s.responses.Add(1)
}

// Responses returns the number of responses sent so far.
func (s *Session) Responses() uint64 {
	return s.responses.Load()
}
