// Package logger holds the process-wide slog logger used by stackctl.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to send records to the console or to a log file.
var L *slog.Logger = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "stackctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

var logFile *os.File

// Options configures the logger initialization.
type Options struct {
	Console io.Writer  // Text output destination when LogDir is empty. nil discards
	LogDir  string     // Directory for dated JSON log files. Takes precedence over Console
	Level   slog.Level // Minimum log level. Default: LevelInfo
}

// Init configures logging. Call from main() before any log calls.
// Records go to a dated JSON file under opts.LogDir if set, otherwise as text
// to opts.Console, otherwise nowhere.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}

	hopts := &slog.HandlerOptions{Level: opts.Level}

	if opts.LogDir == "" {
		if opts.Console == nil {
			L = slog.New(slog.DiscardHandler)
			return nil
		}
		L = slog.New(slog.NewTextHandler(opts.Console, hopts))
		return nil
	}

	if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
		return err
	}

	// Clean up old logs (best-effort, ignore errors)
	cleanOldLogs(opts.LogDir, time.Now())

	filename := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	L = slog.New(slog.NewJSONHandler(f, hopts))
	return nil
}

// Close releases the log file opened by Init, if any, and resets L to discard.
func Close() error {
	L = slog.New(slog.DiscardHandler)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: stackctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
