// Package logging builds the slog loggers used by the facades and the CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
)

// LogLevel represents different logging levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Config holds configuration for a logger.
type Config struct {
	// Level sets the minimum log level.
	Level LogLevel
	// EnableCallerInfo includes file and line number in logs.
	EnableCallerInfo bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns info-level logging to stderr.
func DefaultConfig() Config {
	return Config{Level: LogLevelInfo}
}

// New creates a text logger from config.
func New(config Config) *slog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.EnableCallerInfo,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel parses a string log level into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// LogCall records one system call made by a facade at debug level. Failed
// calls additionally carry the errno.
func LogCall(logger *slog.Logger, call, path string, errno syscall.Errno) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if errno != 0 {
		logger.Debug("system call failed", "call", call, "path", path, "errno", int(errno), "error", errno.Error())
		return
	}
	logger.Debug("system call", "call", call, "path", path)
}
