// Package logger provides the launcher's leveled, dual-sink logging.
//
// Every log call writes a colored `[LEVEL] message` line to the console and
// appends a `[timestamp] [LEVEL] message` line to the current day's log file
// under the logs directory. File-sink failures are swallowed: logging must
// never abort the launcher or surface as an error to the caller, so a missing
// or unwritable logs directory degrades to console-only output.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color" // Colored console output for the different log levels
)

// Console colors per level, in the usual scheme:
// green for info, red for errors, bright magenta for warnings, cyan for debug.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// debugEnabled gates Debug output. Toggled via Init based on the debug flag.
var debugEnabled bool

// dir is the logs directory, relative to the working directory unless an
// absolute path is configured. One file per calendar day accumulates inside.
var dir = "logs"

// timestampFormat is the human-readable second-precision timestamp written
// into the log file. The format is fixed; tooling that tails the logs
// depends on it.
const timestampFormat = "2006-01-02 15:04:05"

// Init enables or disables debug logging. Called once at startup.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
}

// SetDir points the file sink at a different logs directory.
// An empty string leaves the current directory unchanged.
func SetDir(d string) {
	if d != "" {
		dir = d
	}
}

// Info logs an informational message to both sinks.
func Info(format string, a ...any) {
	write("INFO", infoColor, format, a...)
}

// Warn logs a warning message to both sinks.
func Warn(format string, a ...any) {
	write("WARN", warnColor, format, a...)
}

// Error logs an error message to both sinks.
func Error(format string, a ...any) {
	write("ERROR", errorColor, format, a...)
}

// Debug logs a debug message to both sinks, but only when debug logging was
// enabled via Init. Disabled debug calls are a no-op.
func Debug(format string, a ...any) {
	if debugEnabled {
		write("DEBUG", debugColor, format, a...)
	}
}

// FileName returns the log file name for the given time, one file per
// calendar day: setup_YYYYMMDD.log.
func FileName(t time.Time) string {
	return "setup_" + t.Format("20060102") + ".log"
}

// write fans a single log entry out to both sinks. The console line is
// `[LEVEL] message`; the file line carries the timestamp as well.
func write(level string, c *color.Color, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	c.Printf("[%s] %s\n", level, msg)
	appendToFile(level, msg)
}

// appendToFile appends one entry to the current day's log file, creating the
// logs directory on first use. The file is opened and closed on every call so
// no handle is held across log calls. All failures are silently ignored: the
// console write has already happened, and logging must never change the
// launcher's control flow.
func appendToFile(level, msg string) {
	now := time.Now()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName(now)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "[%s] [%s] %s\n", now.Format(timestampFormat), level, msg)
}
