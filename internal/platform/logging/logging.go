package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to logPath. The TUI owns the terminal, so
// nothing may log to stdout/stderr; when the file cannot be opened the
// logger is silenced rather than failing startup.
func New(logPath string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	logger.SetOutput(file)
	return logger
}
