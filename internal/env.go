// Package internal holds process-wide configuration sourced from flags and
// the environment.
package internal

import "github.com/pkg/errors"

// ValidateEnv checks the resolved configuration values for consistency.
func ValidateEnv() error {
	switch Env {
	case "dev", "prod":
	default:
		return errors.Errorf("unsupported env %q", Env)
	}
	switch LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unsupported log level %q", LogLevel)
	}
	if Port <= 0 || Port > 65535 {
		return errors.Errorf("port %d out of range", Port)
	}
	if QueueCapacity <= 0 {
		return errors.New("queue capacity must be positive")
	}
	if FanOutCount <= 0 {
		return errors.New("fan-out count must be positive")
	}
	if MaxMessageSize <= 0 {
		return errors.New("max message size must be positive")
	}
	return nil
}
