package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "development" {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
}
