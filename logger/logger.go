package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mansakrishna23/simple-message-bank/config"
)

// InitLogger configures the standard logrus logger. The returned closer
// releases the log file, if one was opened.
func InitLogger(cfg *config.Config) io.Closer {
	if cfg.LogFormat == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	var closer io.Closer = nopCloser{}
	logrus.SetOutput(os.Stdout)
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", cfg.LogFile, err)
		} else {
			logrus.SetOutput(logFile)
			closer = logFile
		}
	}

	logrus.Info("Logger initialized")
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
