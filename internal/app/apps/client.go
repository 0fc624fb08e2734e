package apps

import (
	"context"

	"echostream/internal"
	"echostream/internal/pkg/client"
	"echostream/internal/pkg/validate"

	"github.com/pkg/errors"
)

// ClientAppCfg configures a ClientApp.
type ClientAppCfg interface {
	ApplyClientApp(*ClientApp) error
}

// ClientApp is the demo echo client application.
type ClientApp struct {
	Port         uint16 `validate:"required"`
	MessageCount int    `validate:"required,gt=0"`
	Repeat       int    `validate:"required,gt=0"`
}

// NewClientApp creates a new ClientApp.
func NewClientApp(cfgs ...ClientAppCfg) (*ClientApp, error) {
	app := &ClientApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyClientApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ClientApp cfg failed")
		}
	}
	if app.Port == 0 {
		app.Port = uint16(internal.Port)
	}
	if app.MessageCount == 0 {
		app.MessageCount = internal.ClientMessageCount
	}
	if app.MessageCount == 0 {
		app.MessageCount = client.DefaultMessageCount
	}
	if app.Repeat == 0 {
		app.Repeat = internal.ClientRepeat
	}
	if app.Repeat == 0 {
		app.Repeat = 1
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ClientApp failed")
	}
	return app, nil
}

// Run exercises all four call shapes against the server once.
func (app *ClientApp) Run(ctx context.Context, _ []string) error {
	c, err := client.NewClient(
		client.WithServerPort(app.Port),
		client.WithMessageCount(app.MessageCount),
	)
	if err != nil {
		return errors.Wrap(err, "create client failed")
	}
	if err := c.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect client failed")
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.WithError(err).Warning("close client failed")
		}
	}()
	for i := 0; i < app.Repeat; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "client interrupted")
		}
		if err := c.RunAll(ctx); err != nil {
			return errors.Wrap(err, "run client failed")
		}
	}
	return nil
}
