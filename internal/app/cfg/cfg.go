// Package cfg implements functionality to configure an app.
//
// The configuration objects defined here need only be implemented once,
// but can be applied to multiple types. In order to add support for a new
// type, the configuration need only implement an ApplyX method.
package cfg

import (
	"echostream/internal"
	"echostream/internal/app/apps"
)

// PortCfg is configuration for the echo service port.
type PortCfg struct {
	port uint16
}

// NewPortCfg creates a new PortCfg from the given port.
func NewPortCfg(port uint16) *PortCfg {
	return &PortCfg{
		port: port,
	}
}

// PortFromEnv creates a new PortCfg from the current environment.
func PortFromEnv() *PortCfg {
	return &PortCfg{
		port: uint16(internal.Port),
	}
}

// ApplyServerApp applies the PortCfg to a ServerApp.
func (cfg PortCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.Port = cfg.port
	return nil
}

// ApplyClientApp applies the PortCfg to a ClientApp.
func (cfg PortCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Port = cfg.port
	return nil
}

// ApplyBenchApp applies the PortCfg to a BenchApp.
func (cfg PortCfg) ApplyBenchApp(app *apps.BenchApp) error {
	app.Port = cfg.port
	return nil
}
