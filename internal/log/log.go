// Package log provides the process-wide logger behind a small interface so
// packages never import logrus directly.
package log

import "sync"

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger
}

var (
	once   sync.Once
	logger Logger
)

// GetLogger returns the process logger. Before Init it returns a logger
// with default settings (info level, console only).
func GetLogger() Logger {
	once.Do(func() {
		logger = newLogrusLogger(defaultConfig())
	})
	return logger
}

// Init configures the process logger. Calling it after the logger has been
// handed out reconfigures the shared instance in place.
func Init(cfg *Config) error {
	if cfg == nil {
		c := defaultConfig()
		cfg = &c
	}
	l, err := configure(cfg)
	if err != nil {
		return err
	}
	once.Do(func() {})
	logger = l
	return nil
}
