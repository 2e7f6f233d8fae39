package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel names a zerolog level in config form.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config controls the process-wide logger.
type Config struct {
	Level  LogLevel
	Pretty bool      // console writer instead of JSON
	Output io.Writer // defaults to os.Stdout
}

var root zerolog.Logger

// Configure replaces the process logger. Unknown levels fall back to info.
func Configure(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(string(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = out
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	root = zerolog.New(w).With().Timestamp().Logger()
	log.Logger = root
}

func Debug() *zerolog.Event { return root.Debug() }
func Info() *zerolog.Event  { return root.Info() }
func Warn() *zerolog.Event  { return root.Warn() }
func Error() *zerolog.Event { return root.Error() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
