package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	logFileMaxSize    = 5 // megabytes
	logFileMaxBackups = 3
	logFileMaxAge     = 28 // days
)

// NewLogger builds the process logger. Entries go to w unless a log file
// is configured, in which case w is left alone so the board stays
// readable.
func NewLogger(c App, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Development {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development})
	log.SetOutput(w)

	if c.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.LogFile,
			MaxSize:    logFileMaxSize,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAge,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", c.LogFile, err)
		}
		log.AddHook(hook)
		log.SetOutput(io.Discard)
	}

	return log, nil
}
