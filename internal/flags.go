package internal

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Values populated by the registered flags.
var (
	Env      string
	LogLevel string

	Port int

	QueueCapacity  int
	FanOutCount    int
	ProcessDelayMS int
	SendIntervalMS int
	MaxMessageSize int

	ClientMessageCount int
	ClientRepeat       int

	BenchConcurrency  int
	BenchMessages     int
	BenchPayloadBytes int
)

// Flag binds a cobra flag to one of the package-level values, with an
// environment variable fallback taking precedence over the flag default.
type Flag struct {
	Name    string
	Env     string
	Usage   string
	Default interface{}
	Target  interface{}
}

// Flag definitions.
var (
	EnvFlag = Flag{
		Name: "env", Env: "ENV",
		Usage:   "deployment environment (dev|prod)",
		Default: "dev", Target: &Env,
	}
	LogLevelFlag = Flag{
		Name: "log-level", Env: "LOG_LEVEL",
		Usage:   "log level (trace|debug|info|warn|error)",
		Default: "info", Target: &LogLevel,
	}

	PortFlag = Flag{
		Name: "port", Env: "PORT",
		Usage:   "echo service port",
		Default: 8080, Target: &Port,
	}
	QueueCapacityFlag = Flag{
		Name: "queue-capacity", Env: "QUEUE_CAPACITY",
		Usage:   "capacity of the async pipeline relay queues",
		Default: 10, Target: &QueueCapacity,
	}
	FanOutCountFlag = Flag{
		Name: "fan-out", Env: "FAN_OUT",
		Usage:   "responses per server-stream request",
		Default: 5, Target: &FanOutCount,
	}
	ProcessDelayMSFlag = Flag{
		Name: "process-delay-ms", Env: "PROCESS_DELAY_MS",
		Usage:   "simulated processing delay per async message, in milliseconds",
		Default: 200, Target: &ProcessDelayMS,
	}
	SendIntervalMSFlag = Flag{
		Name: "send-interval-ms", Env: "SEND_INTERVAL_MS",
		Usage:   "pause between server-stream responses, in milliseconds",
		Default: 100, Target: &SendIntervalMS,
	}
	MaxMessageSizeFlag = Flag{
		Name: "max-message-size", Env: "MAX_MESSAGE_SIZE",
		Usage:   "maximum message size in bytes",
		Default: 50 * 1024 * 1024, Target: &MaxMessageSize,
	}

	ClientMessageCountFlag = Flag{
		Name: "messages", Env: "CLIENT_MESSAGES",
		Usage:   "messages sent per streaming call",
		Default: 3, Target: &ClientMessageCount,
	}
	ClientRepeatFlag = Flag{
		Name: "repeat", Env: "CLIENT_REPEAT",
		Usage:   "how many times to run the full set of call shapes",
		Default: 1, Target: &ClientRepeat,
	}

	BenchConcurrencyFlag = Flag{
		Name: "concurrency", Env: "BENCH_CONCURRENCY",
		Usage:   "concurrent streams per benchmark",
		Default: 10, Target: &BenchConcurrency,
	}
	BenchMessagesFlag = Flag{
		Name: "bench-messages", Env: "BENCH_MESSAGES",
		Usage:   "messages per benchmarked stream",
		Default: 100, Target: &BenchMessages,
	}
	BenchPayloadBytesFlag = Flag{
		Name: "payload-bytes", Env: "BENCH_PAYLOAD_BYTES",
		Usage:   "payload size per benchmarked message",
		Default: 1024, Target: &BenchPayloadBytes,
	}
)

// RegisterCommandFlags registers the given flags on the command, sourcing
// defaults from the environment where set.
func RegisterCommandFlags(cmd *cobra.Command, flags []*Flag) error {
	for _, f := range flags {
		switch target := f.Target.(type) {
		case *string:
			def, ok := f.Default.(string)
			if !ok {
				return errors.Errorf("flag %s: default is not a string", f.Name)
			}
			if v, found := os.LookupEnv(f.Env); found {
				def = v
			}
			cmd.PersistentFlags().StringVar(target, f.Name, def, f.Usage)
		case *int:
			def, ok := f.Default.(int)
			if !ok {
				return errors.Errorf("flag %s: default is not an int", f.Name)
			}
			if v, found := os.LookupEnv(f.Env); found {
				n, err := strconv.Atoi(v)
				if err != nil {
					return errors.Wrapf(err, "parse %s failed", f.Env)
				}
				def = n
			}
			cmd.PersistentFlags().IntVar(target, f.Name, def, f.Usage)
		default:
			return errors.Errorf("flag %s: unsupported target type", f.Name)
		}
	}
	return nil
}
