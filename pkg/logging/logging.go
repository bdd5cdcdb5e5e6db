// pkg/logging/logging.go

// Package logging builds the run-scoped logger. The logger and the log
// file handle behind it are created once at startup and passed
// explicitly through component configs; the caller closes the returned
// handle at the end of the run.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configures Setup.
type Options struct {
	// Verbosity raises log detail: 0 info, 1 debug, 2+ trace.
	Verbosity int

	// Quiet drops console logging to warnings and above.
	Quiet bool

	// NoColor disables console colors.
	NoColor bool

	// LogFile appends the structured stream to a file; empty disables
	// file logging.
	LogFile string
}

// Setup builds the logger and opens the log file. The returned closer
// must be closed when the run ends; it is never nil.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	switch {
	case opts.Quiet:
		level = zerolog.WarnLevel
	case opts.Verbosity == 1:
		level = zerolog.DebugLevel
	case opts.Verbosity >= 2:
		level = zerolog.TraceLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	var fileErr error

	if opts.LogFile != "" {
		f, err := openLogFile(opts.LogFile)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, f)
			closer = f
		}
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(level)

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("path", opts.LogFile).
			Msg("could not open log file, logging to console only")
	}

	return logger, closer, nil
}

// openLogFile creates the parent directory and opens the file in
// append mode.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
