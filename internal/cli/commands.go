package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Petka17/observable"
	pkgerrors "github.com/Petka17/observable/pkg/errors"
)

func (a *App) newOfCommand() *cobra.Command {
	var mapName, filterName string
	cmd := &cobra.Command{
		Use:   "of [values...]",
		Short: "Emit integers synchronously, optionally mapped and filtered",
		Example: `  observable of 1 2 3 --map double
  observable of 1 2 3 4 --filter even -o json
  observable of 1 2 3 --map fail-on=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return pkgerrors.NewValidationError("value", arg, "not an integer")
				}
				values = append(values, v)
			}

			source := observable.OfSlice(values)
			if mapName != "" {
				projection, err := projectionByName(mapName)
				if err != nil {
					return err
				}
				source = observable.Map(source, projection)
			}
			if filterName != "" {
				predicate, err := predicateByName(filterName)
				if err != nil {
					return err
				}
				source = source.Filter(predicate)
			}

			return run(cmd.Context(), newPrinter(a.out, a.config.Format), source, nil)
		},
	}
	cmd.Flags().StringVar(&mapName, "map", "", "projection: double, negate, square, fail-on=N")
	cmd.Flags().StringVar(&filterName, "filter", "", "predicate: odd, even, positive")
	return cmd
}

func (a *App) newFailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fail <message>",
		Short: "Emit a single error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), newPrinter(a.out, a.config.Format), observable.Fail[int](args[0]), nil)
		},
	}
}

func (a *App) newTimeoutCommand() *cobra.Command {
	var cancelAfter time.Duration
	cmd := &cobra.Command{
		Use:   "timeout",
		Short: "Emit once after a delay, then complete",
		Example: `  observable timeout --delay 1s
  observable timeout --delay 1s --cancel-after 200ms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stop := make(chan string, 1)
			if cancelAfter > 0 {
				timer := time.AfterFunc(cancelAfter, func() { stop <- "cancelled" })
				defer timer.Stop()
			}
			source := observable.Timeout(a.config.Delay)
			return run(cmd.Context(), newPrinter(a.out, a.config.Format), source, stop)
		},
	}
	cmd.Flags().Duration("delay", 500*time.Millisecond, "delay before the value is emitted")
	cmd.Flags().DurationVar(&cancelAfter, "cancel-after", 0, "unsubscribe after this long (0 never)")
	return cmd
}

func (a *App) newEventsCommand() *cobra.Command {
	var eventName, grep string
	var limit int
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Dispatch each input line as an event and print the observed ones",
		Example: `  tail -f app.log | observable events --grep ERROR --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return pkgerrors.NewValidationError("limit", limit, "must not be negative")
			}
			target := observable.NewDispatcher()

			lines := observable.FromEvent(eventName, target)
			if grep != "" {
				lines = lines.Filter(func(e observable.Event) bool {
					line, _ := e.Payload.(string)
					return strings.Contains(line, grep)
				})
			}
			if limit > 0 {
				lines = take(lines, limit)
			}

			// input is only read once the pipeline is listening
			stop := make(chan string, 1)
			source := observable.New(func(o observable.Observer[observable.Event]) observable.Subscription {
				sub := lines.Subscribe(o)
				go a.dispatchLines(target, eventName, stop)
				return sub
			})

			return run(cmd.Context(), newPrinter(a.out, a.config.Format), source, stop)
		},
	}
	cmd.Flags().StringVar(&eventName, "event", "line", "event name each line is dispatched as")
	cmd.Flags().StringVar(&grep, "grep", "", "only keep lines containing this text")
	cmd.Flags().IntVar(&limit, "limit", 0, "complete after this many lines (0 unlimited)")
	return cmd
}

// dispatchLines fires one event per input line and reports why it stopped.
func (a *App) dispatchLines(target *observable.Dispatcher, name string, stop chan<- string) {
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		target.Dispatch(name, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		stop <- fmt.Sprintf("input error: %v", err)
		return
	}
	stop <- "end of input"
}
