package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a printf-style logger over a single logrus entry that carries the
// app field, if any.
type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
}

func New() *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return &Logger{base: base, entry: logrus.NewEntry(base)}
}

// NewWithEnv uses a text formatter in development and JSON everywhere else.
func NewWithEnv(appName, env string) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)

	if env == "" || env == "development" || env == "dev" {
		base.SetLevel(logrus.DebugLevel)
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		base.SetLevel(logrus.InfoLevel)
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{base: base, entry: base.WithField("app", appName)}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Logrus exposes the underlying logger for libraries that want an io.Writer.
func (l *Logger) Logrus() *logrus.Logger {
	return l.base
}
