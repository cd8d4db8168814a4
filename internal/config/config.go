// Package config loads the process configuration from the environment.
package config

import (
	"os"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Managed backend
	BackendURL    string // Base URL of the managed database/auth/storage service
	ServiceKey    string // Service role key for the managed backend
	AuthJWTSecret string // When set, bearer tokens are verified locally instead of via the auth API

	// Receipts
	ReceiptsBucket string
	OCRURL         string
}

func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "4000"),
		DBPath: getEnv("DB_PATH", "data/neuralcash.db"),

		BackendURL:    getEnv("BACKEND_URL", ""),
		ServiceKey:    getEnv("BACKEND_SERVICE_KEY", ""),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		ReceiptsBucket: getEnv("RECEIPTS_BUCKET", "receipts"),
		OCRURL:         getEnv("OCR_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
