// Package iologger sets up the default slog logger.
//
// Every entry carries a "run" group with the id of the current process
// run and the taxdump version, so that several conversions appended to
// one log file can be told apart.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	app "github.com/gnames/taxdump/pkg"
	"github.com/gnames/taxdump/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "taxdump.log"

// RunID identifies the current run. It does not change between Init
// calls of the same process.
var RunID = newRunID(time.Now(), os.Getpid())

func newRunID(t time.Time, pid int) string {
	return t.UTC().Format("20060102T150405") + "-" + strconv.Itoa(pid)
}

// Init initializes the global slog logger with the given configuration.
// The log file in logDir is used only if the destination is "file". With
// append the file keeps entries of earlier runs, otherwise it is truncated.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	writer, err := openWriter(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	logger := slog.New(handler).With(
		slog.Group("run", "id", RunID, "version", app.Version),
	)
	slog.SetDefault(logger)
	return nil
}

func openWriter(logDir, destination string, append bool) (io.Writer, error) {
	switch destination {
	case "stdout":
		return os.Stdout, nil
	case "file":
	default:
		return os.Stderr, nil
	}

	logPath := filepath.Join(logDir, LogFile)
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		return nil, CreateLogFileError(logPath, err)
	}
	return file, nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
