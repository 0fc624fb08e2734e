// Package main is the echostream application entrypoint.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"echostream/internal"
	"echostream/internal/app/apps"
	"echostream/internal/app/cfg"
	"echostream/internal/pkg/log"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CLI command definitions.
var (
	logger logrus.FieldLogger = logrus.StandardLogger()

	rootCmd = &cobra.Command{
		Use: "echostream",
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	}

	serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Starts the echo stream server.",
		RunE:  runCmd,
	}

	clientCmd = &cobra.Command{
		Use:   "client",
		Short: "Runs the echo client once against every call shape.",
		RunE:  runCmd,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Benchmarks latency and throughput of every call shape.",
		RunE:  runCmd,
	}
)

func newApp(_ context.Context, cmd *cobra.Command) (apps.App, error) {
	switch cmd.Name() {
	case "server":
		app, err := apps.NewServerApp(cfg.PortFromEnv())
		if err != nil {
			return nil, errors.Wrap(err, "new server app failed")
		}
		return app, nil
	case "client":
		app, err := apps.NewClientApp(cfg.PortFromEnv())
		if err != nil {
			return nil, errors.Wrap(err, "new client app failed")
		}
		return app, nil
	case "bench":
		app, err := apps.NewBenchApp(cfg.PortFromEnv())
		if err != nil {
			return nil, errors.Wrap(err, "new bench app failed")
		}
		return app, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", cmd.Name())
	}
}

func runCmd(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := chainedCheck(
		ctx,
		envCheck,
	); err != nil {
		return errors.Wrap(err, "chained check failed")
	}
	app, err := newApp(ctx, cmd)
	if err != nil {
		return errors.Wrapf(err, "new %s app failed", cmd.Name())
	}
	return errors.Wrap(app.Run(ctx, args), "run app failed")
}

func envCheck(ctx context.Context) error {
	err := internal.ValidateEnv()
	if err != nil {
		return errors.Wrap(err, "validate env failed")
	}
	log.SetLogger(internal.LogLevel)
	return nil
}

func chainedCheck(ctx context.Context, checks ...func(context.Context) error) error {
	for _, check := range checks {
		err := check(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	err := internal.RegisterCommandFlags(rootCmd, []*internal.Flag{
		&internal.EnvFlag,
		&internal.LogLevelFlag,

		&internal.PortFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	err = internal.RegisterCommandFlags(serverCmd, []*internal.Flag{
		&internal.QueueCapacityFlag,
		&internal.FanOutCountFlag,
		&internal.ProcessDelayMSFlag,
		&internal.SendIntervalMSFlag,
		&internal.MaxMessageSizeFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	err = internal.RegisterCommandFlags(clientCmd, []*internal.Flag{
		&internal.ClientMessageCountFlag,
		&internal.ClientRepeatFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	err = internal.RegisterCommandFlags(benchCmd, []*internal.Flag{
		&internal.BenchConcurrencyFlag,
		&internal.BenchMessagesFlag,
		&internal.BenchPayloadBytesFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	rootCmd.AddCommand(
		serverCmd,
		clientCmd,
		benchCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(errors.Wrap(err, "execute root command failed"))
	}
}
