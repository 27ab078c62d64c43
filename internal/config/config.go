package config

import (
	"log"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger logger را بر اساس APP_ENV می‌سازد
func InitLogger(env string) {
	var err error
	Logger, err = NewLogger(env)
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized", zap.String("env", env))
}

// NewLogger returns a production logger for "production" and a development
// logger for anything else.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
