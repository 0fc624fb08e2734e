// Package interceptor provides the logging interceptors of the echo server.
package interceptor

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// StreamLogger logs the start, duration and terminal status of every
// streaming call.
func StreamLogger() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		logger.WithField("method", info.FullMethod).Info("stream started")
		err := handler(srv, ss)
		entry := logger.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"duration": time.Since(start).String(),
			"code":     status.Code(err).String(),
		})
		if err != nil && status.Code(err) != codes.Canceled {
			entry.WithError(err).Error("stream finished with error")
			return err
		}
		entry.Info("stream finished")
		return err
	}
}

// UnaryLogger logs the duration and terminal status of every unary call.
func UnaryLogger() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		entry := logger.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"duration": time.Since(start).String(),
			"code":     status.Code(err).String(),
		})
		if err != nil && status.Code(err) != codes.Canceled {
			entry.WithError(err).Error("call finished with error")
			return resp, err
		}
		entry.Info("call finished")
		return resp, err
	}
}
