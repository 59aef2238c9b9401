// Package logger provides leveled diagnostics for g.
//
// Diagnostics go to standard error so that standard output carries only
// matched lines. The logger is thread-safe; scan workers share one instance.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// DefaultLevel keeps a normal run silent on stderr.
const DefaultLevel = "warn"

// Logger is the diagnostics surface used by the scan pipeline.
//
// trace reports every scanned source, debug reports skips and mode
// decisions, info the run summary, warn ignored settings and error output
// failures.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Messages below the configured level are dropped.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to DefaultLevel.
// Color output is enabled when writer is a terminal.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    NormalizeLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// NormalizeLevel converts a log level string to lowercase and validates it.
// Returns DefaultLevel for empty or invalid levels.
func NormalizeLevel(level string) string {
	if !ValidLevel(level) {
		return DefaultLevel
	}
	return strings.ToLower(strings.TrimSpace(level))
}

// Level returns the configured level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message.
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// Tracef formats and logs a trace-level message.
func (cl *ConsoleLogger) Tracef(format string, args ...interface{}) {
	if cl.shouldLog("trace") {
		cl.LogTrace(fmt.Sprintf(format, args...))
	}
}

// Debugf formats and logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	if cl.shouldLog("debug") {
		cl.LogDebug(fmt.Sprintf(format, args...))
	}
}

// Infof formats and logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	if cl.shouldLog("info") {
		cl.LogInfo(fmt.Sprintf(format, args...))
	}
}

// Warnf formats and logs a warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	if cl.shouldLog("warn") {
		cl.LogWarn(fmt.Sprintf(format, args...))
	}
}

// Errorf formats and logs an error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	if cl.shouldLog("error") {
		cl.LogError(fmt.Sprintf(format, args...))
	}
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl == nil || cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// colorLevel renders the level name with ANSI color codes.
func colorLevel(level string) string {
	var c *color.Color
	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		return level
	}
	c.EnableColor()
	return c.Sprint(level)
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger returns a logger that drops all messages.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) Tracef(format string, args ...interface{}) {}
func (n *NoOpLogger) Debugf(format string, args ...interface{}) {}
func (n *NoOpLogger) Infof(format string, args ...interface{})  {}
func (n *NoOpLogger) Warnf(format string, args ...interface{})  {}
func (n *NoOpLogger) Errorf(format string, args ...interface{}) {}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NoOpLogger)(nil)
)
