// Package log is the diagnostic channel. Nothing logged here is shown to the
// user as an error; the TUI sends it to a file.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(io.Discard)
	loggerLock sync.RWMutex
	logFile    *os.File
)

// Options configures the global logger.
type Options struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string
	// File, when set, receives JSON lines instead of the console.
	File string
}

// Setup installs the global logger. Without a file it writes a console
// format to stderr, coloured only when stderr is a terminal.
func Setup(o Options) error {
	var out io.Writer
	var f *os.File
	if o.File != "" {
		var err error
		f, err = os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		out = f
	} else {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}
	}

	loggerLock.Lock()
	defer loggerLock.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = zerolog.New(out).
		Level(parseLevel(o.Level)).
		With().
		Timestamp().
		Logger()
	return nil
}

// SetOutput points the logger at w, keeping its level. Used by tests.
func SetOutput(w io.Writer) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = logger.Output(w)
}

// Close releases the log file, if any.
func Close() error {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = zerolog.New(io.Discard)
	return err
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func get() *zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	l := logger
	return &l
}

func Debug() *zerolog.Event {
	return get().Debug()
}

func Info() *zerolog.Event {
	return get().Info()
}

func Warn() *zerolog.Event {
	return get().Warn()
}

func Error() *zerolog.Event {
	return get().Error()
}
