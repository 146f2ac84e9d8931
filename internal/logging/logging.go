package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to path, or a discarding logger when path is
// empty or unwritable. TUI code must never log to the terminal it draws on.
func New(path string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(io.Discard)

	if path == "" {
		return log
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log
	}
	log.SetOutput(f)
	return log
}
