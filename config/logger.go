package config

import (
	"os"

	"github.com/sirupsen/logrus"

	"speaky-backend/config/logger"
)

func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return log
}

// NewAppLogger builds the zerolog file logger used by the database layer.
func NewAppLogger() *logger.AppLogger {
	return logger.NewLogger()
}
