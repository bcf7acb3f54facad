// Package logging provides file-based logging for tempo. Log lines go
// to a single file under the data directory so they never disturb the
// TUI surface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/takumin/tempo/internal/domain"
)

// Ensure Logger implements domain.Logger.
var _ domain.Logger = (*Logger)(nil)

// LogFileName is the name of the application log file.
const LogFileName = "tempo.log"

// Logger writes levelled, scope-tagged lines to the log file.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	dataDir string
	level   slog.Level
}

// New creates a Logger writing under dataDir/logs. An empty dataDir
// disables logging (no-op logger).
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{dataDir: dataDir, level: level}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogPath returns the log file location for a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// Debug logs at debug level.
func (l *Logger) Debug(scope, msg string) { l.log(slog.LevelDebug, scope, msg) }

// Info logs at info level.
func (l *Logger) Info(scope, msg string) { l.log(slog.LevelInfo, scope, msg) }

// Warn logs at warn level.
func (l *Logger) Warn(scope, msg string) { l.log(slog.LevelWarn, scope, msg) }

// Error logs at error level.
func (l *Logger) Error(scope, msg string) { l.log(slog.LevelError, scope, msg) }

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) log(level slog.Level, scope, msg string) {
	if l.dataDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(time.Now(), level, scope, msg)

	f, err := l.ensureFile()
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(f, entry)
}

func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	path := LogPath(l.dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [sync] message
func formatLog(t time.Time, level slog.Level, scope, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
