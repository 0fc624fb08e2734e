package apps

import (
	"context"
	"fmt"
	"net"
	"time"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"
	"echostream/internal"
	"echostream/internal/pkg/echo"
	"echostream/internal/pkg/interceptor"
	"echostream/internal/pkg/server"
	"echostream/internal/pkg/session"
	"echostream/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

const (
	keepaliveTime    = 50 * time.Second
	keepaliveTimeout = 10 * time.Second
	keepaliveMinTime = 30 * time.Second
)

// ServerAppCfg configures a ServerApp.
type ServerAppCfg interface {
	ApplyServerApp(*ServerApp) error
}

// ServerApp is the echo server application.
type ServerApp struct {
	Port uint16 `validate:"required"`

	QueueCapacity  int `validate:"required,gt=0"`
	FanOut         int `validate:"required,gt=0"`
	MaxMessageSize int `validate:"required,gt=0"`
	ProcessDelay   time.Duration
	SendInterval   time.Duration
}

// NewServerApp creates a new ServerApp.
func NewServerApp(cfgs ...ServerAppCfg) (*ServerApp, error) {
	app := &ServerApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyServerApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ServerApp cfg failed")
		}
	}
	if app.Port == 0 {
		app.Port = uint16(internal.Port)
	}
	if app.QueueCapacity == 0 {
		app.QueueCapacity = echo.DefaultQueueCapacity
	}
	if app.FanOut == 0 {
		app.FanOut = echo.DefaultFanOut
	}
	if app.MaxMessageSize == 0 {
		app.MaxMessageSize = 50 * 1024 * 1024
	}
	if app.ProcessDelay == 0 {
		app.ProcessDelay = time.Duration(internal.ProcessDelayMS) * time.Millisecond
	}
	if app.SendInterval == 0 {
		app.SendInterval = time.Duration(internal.SendIntervalMS) * time.Millisecond
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ServerApp failed")
	}
	return app, nil
}

// Run serves the echo service until the context ends, then stops gracefully.
func (app *ServerApp) Run(ctx context.Context, _ []string) error {
	store := session.NewMemoryStore()
	handler, err := echo.NewHandler(
		echo.WithSessionStore(store),
		echo.WithQueueCapacity(app.QueueCapacity),
		echo.WithFanOut(app.FanOut),
		echo.WithProcessDelay(app.ProcessDelay),
		echo.WithSendInterval(app.SendInterval),
	)
	if err != nil {
		return errors.Wrap(err, "create handler failed")
	}
	svc, err := server.NewServer(
		server.WithHandler(handler),
		server.WithSessionStore(store),
	)
	if err != nil {
		return errors.Wrap(err, "create server failed")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", app.Port))
	if err != nil {
		return errors.Wrapf(err, "listen on port %d failed", app.Port)
	}

	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             keepaliveMinTime,
			PermitWithoutStream: true,
		}),
		grpc.MaxRecvMsgSize(app.MaxMessageSize),
		grpc.MaxSendMsgSize(app.MaxMessageSize),
		grpc.ChainStreamInterceptor(interceptor.StreamLogger()),
		grpc.ChainUnaryInterceptor(interceptor.UnaryLogger()),
	)
	echopb.RegisterEchoServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()
	logger.WithField("addr", lis.Addr().String()).Info("echo server listening")

	select {
	case <-ctx.Done():
		logger.Info("shutting down echo server")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
		if err := <-errCh; err != nil {
			return errors.Wrap(err, "serve failed")
		}
		return nil
	case err := <-errCh:
		return errors.Wrap(err, "serve failed")
	}
}
