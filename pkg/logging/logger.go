// Package logging provides structured logging for the observable library
// and its CLI using zerolog. The library itself only logs at debug and trace
// level, so the default logger stays quiet unless LOG_LEVEL or DEBUG asks
// for more.
//
// Example usage:
//
//	logging.Configure(&logging.Config{Level: "debug", Format: "console"})
//	sub := observable.OfSequence(1, 2, 3).Subscribe(observer)
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// defaultLogger is the global logger instance. Library code logs from
// timer and dispatch goroutines, so it is swapped atomically.
var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	logger := createDefaultLogger()
	defaultLogger.Store(&logger)
}

// createDefaultLogger creates a logger with default settings.
func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr

	if isTerminal(os.Stderr) && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := getLogLevel()

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
}

// Trace starts a new trace level log event.
func Trace() *zerolog.Event {
	return Default().Trace()
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return Default().Debug()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// getLogLevel returns the log level from environment or defaults.
func getLogLevel() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
