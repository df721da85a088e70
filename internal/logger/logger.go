package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/config"
)

// New builds the process logger. Format defaults to JSON in release mode
// and text otherwise; LOG_FORMAT overrides either way.
func New(cfg *config.Config) *logrus.Logger {
	return newWithOutput(cfg, os.Stdout)
}

func newWithOutput(cfg *config.Config, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	format := strings.ToLower(cfg.LogFormat)
	if format == "" {
		if cfg.GinMode == "release" {
			format = "json"
		} else {
			format = "text"
		}
	}

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err != nil && cfg.LogLevel != "" {
		l.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	return l
}
