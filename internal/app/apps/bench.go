package apps

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"echostream/internal"
	"echostream/internal/pkg/bench"
	"echostream/internal/pkg/validate"

	"github.com/pkg/errors"
)

// BenchAppCfg configures a BenchApp.
type BenchAppCfg interface {
	ApplyBenchApp(*BenchApp) error
}

// BenchApp benchmarks the echo service.
type BenchApp struct {
	Port uint16 `validate:"required"`

	Concurrency       int `validate:"required,gt=0"`
	MessagesPerStream int `validate:"required,gt=0"`
	PayloadBytes      int `validate:"required,gt=0"`
}

// NewBenchApp creates a new BenchApp.
func NewBenchApp(cfgs ...BenchAppCfg) (*BenchApp, error) {
	app := &BenchApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyBenchApp(app); err != nil {
			return nil, errors.Wrap(err, "apply BenchApp cfg failed")
		}
	}
	if app.Port == 0 {
		app.Port = uint16(internal.Port)
	}
	if app.Concurrency == 0 {
		app.Concurrency = internal.BenchConcurrency
	}
	if app.Concurrency == 0 {
		app.Concurrency = bench.DefaultConcurrency
	}
	if app.MessagesPerStream == 0 {
		app.MessagesPerStream = internal.BenchMessages
	}
	if app.MessagesPerStream == 0 {
		app.MessagesPerStream = bench.DefaultMessagesPerStream
	}
	if app.PayloadBytes == 0 {
		app.PayloadBytes = internal.BenchPayloadBytes
	}
	if app.PayloadBytes == 0 {
		app.PayloadBytes = bench.DefaultPayloadBytes
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate BenchApp failed")
	}
	return app, nil
}

// Run benchmarks all four call shapes and prints the results.
func (app *BenchApp) Run(ctx context.Context, _ []string) error {
	runner, err := bench.NewRunner(
		bench.WithServerPort(app.Port),
		bench.WithConcurrency(app.Concurrency),
		bench.WithMessagesPerStream(app.MessagesPerStream),
		bench.WithPayloadBytes(app.PayloadBytes),
	)
	if err != nil {
		return errors.Wrap(err, "create bench runner failed")
	}
	if err := runner.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect bench runner failed")
	}
	defer func() {
		if err := runner.Close(); err != nil {
			logger.WithError(err).Warning("close bench runner failed")
		}
	}()

	results, err := runner.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "run benchmarks failed")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "shape\tstreams\treqs\tresps\terrs\tduration\tavg\tp95\treq/s\tresp/s\tsuccess")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s\t%s\t%.1f\t%.1f\t%.0f%%\n",
			r.Name, r.Streams, r.Requests, r.Responses, r.Errors,
			r.Duration.Round(time.Millisecond),
			r.Latency.Avg.Round(time.Millisecond),
			r.Latency.P95.Round(time.Millisecond),
			r.RequestsPerSecond, r.ResponsesPerSecond, r.SuccessRate*100,
		)
	}
	return errors.Wrap(w.Flush(), "flush results failed")
}
