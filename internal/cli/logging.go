package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
	"golang.org/x/term"
)

var level = new(slog.LevelVar)

// SetVerbosity sets the logging level for the default logger based on the verbose flag count.
//
// This function has the same behaviors as slog.SetLogLoggerLevel.
func SetVerbosity(verbosity int) {
	l := getLevel(verbosity)
	level.Set(l)
	slog.SetLogLoggerLevel(l)
}

// SetSlog sets the logging level and format for the default logger.
//
// JSON logs go to stdout. Otherwise, human readable logs go to stderr, colored when it is a terminal.
func SetSlog(verbosity int, jsonLogs bool) {
	SetVerbosity(verbosity)
	slog.SetDefault(slog.New(newHandler(os.Stdout, os.Stderr, jsonLogs)))
}

// SetSlogStderr is like SetSlog, but JSON logs go to stderr too, leaving stdout to the command output.
func SetSlogStderr(verbosity int, jsonLogs bool) {
	SetVerbosity(verbosity)
	slog.SetDefault(slog.New(newHandler(os.Stderr, os.Stderr, jsonLogs)))
}

func newHandler(stdout io.Writer, stderr *os.File, jsonLogs bool) slog.Handler {
	if jsonLogs {
		return slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !term.IsTerminal(int(stderr.Fd())),
	})
}

func getLevel(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return constants.DefaultLogLevel
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
