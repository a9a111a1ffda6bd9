// Package log is a thin package-level facade over charmbracelet/log,
// so callers write log.Info(...) without threading a logger value
// through every function.
package log

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// Init configures the process logger: a prefix naming the tool and a
// level string ("debug", "info", "warn", "error"). An unrecognized
// level falls back to info.
func Init(appName, level string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
}

func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

func Fatal(msg string, keyvals ...any) {
	logger.Fatal(msg, keyvals...)
}
