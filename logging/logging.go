// Package logging configures the process-wide logrus logger and hands out
// per-component entries.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config selects level, format and destination.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // text or json
	Output io.Writer
}

// Setup applies cfg to the standard logger. Components keep the entries
// they got from For, so Setup may run after them.
func Setup(cfg Config) error {
	level := log.InfoLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return errors.Wrapf(err, "log level %q", cfg.Level)
		}
		level = l
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", cfg.Format)
	}

	// stdout carries the key event stream, logs never go there
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)
	return nil
}

// For returns the logger of one component.
func For(component string) *log.Entry {
	return log.WithField("component", component)
}
