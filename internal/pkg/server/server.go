package server

import (
	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal/pkg/echo"
	"echostream/internal/pkg/session"

	"github.com/pkg/errors"
)

// Server implements the EchoService endpoints by delegating to an echo
// handler, one session per call.
type Server struct {
	echopb.UnimplementedEchoServiceServer

	handler *echo.Handler
	store   session.Store
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithHandler sets the echo handler backing the endpoints.
func WithHandler(h *echo.Handler) Cfg {
	return func(s *Server) error {
		s.handler = h
		return nil
	}
}

// WithSessionStore sets the store tracking in-flight call sessions.
func WithSessionStore(store session.Store) Cfg {
	return func(s *Server) error {
		s.store = store
		return nil
	}
}

// NewServer creates a new Server with the given configuration. A default
// handler is built when none is supplied.
func NewServer(cfgs ...Cfg) (*Server, error) {
	server := &Server{}
	for _, cfg := range cfgs {
		if err := cfg(server); err != nil {
			return nil, errors.Wrap(err, "apply Server cfg failed")
		}
	}
	if server.store == nil {
		server.store = session.NewMemoryStore()
	}
	if server.handler == nil {
		handler, err := echo.NewHandler(echo.WithSessionStore(server.store))
		if err != nil {
			return nil, errors.Wrap(err, "create default handler failed")
		}
		server.handler = handler
	}
	return server, nil
}

// Sessions exposes the store of in-flight call sessions.
func (s *Server) Sessions() session.Store {
	return s.store
}

// EchoClientStream implements the client-streaming endpoint.
func (s *Server) EchoClientStream(srv echopb.EchoService_EchoClientStreamServer) error {
	return s.handler.ClientStream(srv)
}

// EchoServerStream implements the server-streaming endpoint.
func (s *Server) EchoServerStream(req *echopb.EchoRequest, srv echopb.EchoService_EchoServerStreamServer) error {
	return s.handler.ServerStream(req, srv)
}

// EchoBidirectionalStreamSync implements the synchronous bidirectional endpoint.
func (s *Server) EchoBidirectionalStreamSync(srv echopb.EchoService_EchoBidirectionalStreamSyncServer) error {
	return s.handler.BidiSync(srv)
}

// EchoBidirectionalStreamAsync implements the asynchronous bidirectional endpoint.
func (s *Server) EchoBidirectionalStreamAsync(srv echopb.EchoService_EchoBidirectionalStreamAsyncServer) error {
	return s.handler.BidiAsync(srv)
}
