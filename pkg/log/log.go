// Package log provides the logging interface used throughout the
// emulator, along with a logrus backed implementation.
package log

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at debug level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// WithLevel returns a logrus backed Logger that only emits entries at
// or above the given level, e.g. "info" or "error".
func WithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := New().(*logrus.Logger)
	l.SetLevel(lvl)
	return l, nil
}
