// Package cli implements the observable command line tool: each command
// builds a pipeline from its flags, subscribes to it and prints every
// notification.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Petka17/observable"
	"github.com/Petka17/observable/pkg/logging"
)

// App carries the IO streams and configuration shared by all commands.
type App struct {
	in     io.Reader
	out    io.Writer
	v      *viper.Viper
	config *Config
}

func New(in io.Reader, out io.Writer) *App {
	return &App{in: in, out: out, v: viper.New()}
}

// Execute runs the CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "observable",
		Short: "Build and run small observable pipelines",
		Long: `observable subscribes to a pipeline built from its arguments and prints
each notification (next, error, complete) as it is delivered.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().String("config", "", "config file (default is ./.observable.yaml or $HOME/.observable.yaml)")
	root.PersistentFlags().StringP("format", "o", "text", "output format: text, json, yaml")
	root.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().String("log-format", "auto", "log format: auto, console, json")

	root.AddCommand(
		a.newOfCommand(),
		a.newFailCommand(),
		a.newTimeoutCommand(),
		a.newEventsCommand(),
	)
	return root
}

// setup binds the parsed flags and loads the configuration before any
// command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.config = cfg

	logging.Configure(&logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stderr",
	})
	logging.Debug().
		Str("config_file", cfg.ConfigFile).
		Str("format", cfg.Format).
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}

// run subscribes to source, prints its notifications and waits until the
// stream terminates, stop yields a reason, or ctx is done. It returns the
// error the stream ended with.
func run[T any](ctx context.Context, p *printer, source observable.Observable[T], stop <-chan string) error {
	done := make(chan error, 1)
	sub := observable.Materialize(source).SubscribeFunc(func(n observable.Notification[T]) {
		p.print(toRecord(n))
		if n.IsTerminal() {
			done <- n.Err()
		}
	}, nil, nil)
	defer sub.Unsubscribe()

	select {
	case err := <-done:
		return streamResult(p, err)
	case reason := <-stop:
		// a source that terminated just before stop still wins
		select {
		case err := <-done:
			return streamResult(p, err)
		default:
		}
		sub.Unsubscribe()
		p.print(record{Kind: reason})
		return p.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func streamResult(p *printer, err error) error {
	if err != nil {
		return fmt.Errorf("stream failed: %w", err)
	}
	return p.Err()
}
