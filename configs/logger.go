package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger instance shared across the service
var Logger *logrus.Logger

func InitLogger() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// LogWithContext returns an entry tagged with the service and operation it
// belongs to, so log lines from different subsystems stay distinguishable.
func LogWithContext(service, operation string) *logrus.Entry {
	if Logger == nil {
		InitLogger()
	}
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"operation": operation,
	})
}
