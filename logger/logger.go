package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"pizzahub/config"

	"github.com/sirupsen/logrus"
)

// Setup configures the logrus standard logger from the configuration.
// Logs always go to stdout; when LogPath is set they are also appended there.
// The returned func closes the log file, if any.
func Setup(conf config.Configuration) (func() error, error) {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(conf.LogLevel)))
	if err != nil {
		level = logrus.InfoLevel
	}
	if conf.Debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if conf.LogPath == "" {
		log.SetOutput(os.Stdout)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(conf.LogPath), 0o755); err != nil {
		log.SetOutput(os.Stdout)
		return nil, err
	}
	f, err := os.OpenFile(conf.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(os.Stdout)
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))

	log.WithFields(logrus.Fields{"path": conf.LogPath, "level": level.String()}).Info("logger initialized")

	return func() error {
		log.SetOutput(os.Stdout)
		return f.Close()
	}, nil
}
