// Package logger owns the process-wide zerolog instance for the webshop API.
// The server emits JSON lines to stdout; in development Init switches to the
// coloured console writer so request logs stay readable next to Echo's own
// output.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the log level and output shape at startup.
type Options struct {
	// Level is the minimum level (trace, debug, info, warn, error).
	// Unknown or empty values fall back to info.
	Level string
	// Pretty switches to the human-oriented console writer.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init builds the shared logger. Repeated calls return the logger from the
// first call unchanged.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl, err := zerolog.ParseLevel(opts.Level)
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Caller().
			Logger()

		initialized = true
	})
	return instance
}

// Get returns the shared logger. It panics when called before Init so a
// misordered bootstrap fails loudly instead of logging into the void.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Reset discards the singleton so the next Init rebuilds it. For tests.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}
