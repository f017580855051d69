// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a new zerolog.Logger configured for the application.
func New(serviceName, env string) zerolog.Logger {
	level := zerolog.InfoLevel
	if env == "dev" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().
		Str("service", serviceName).
		Str("env", env).
		Timestamp().
		Logger()
}
