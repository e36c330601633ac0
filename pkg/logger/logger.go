package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type Level = log.Level

const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
)

// Logger is a leveled, structured logger. Messages take trailing key/value
// pairs: log.Info("Fetched rows", "rows", n).
type Logger struct {
	logger *log.Logger
}

func New(levelStr string) *Logger {
	return NewWithWriter(os.Stdout, levelStr)
}

func NewWithWriter(w io.Writer, levelStr string) *Logger {
	return &Logger{
		logger: log.NewWithOptions(w, log.Options{
			Level:           parseLevel(levelStr),
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02 15:04:05",
		}),
	}
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// With returns a child logger that adds keyvals to every message.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{logger: l.logger.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.logger.Debug(msg, keyvals...)
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.logger.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.logger.Warn(msg, keyvals...)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.logger.Error(msg, keyvals...)
}

func (l *Logger) Fatal(msg string, keyvals ...interface{}) {
	l.logger.Fatal(msg, keyvals...)
}
