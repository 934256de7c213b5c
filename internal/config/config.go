// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDriver      string // "sqlite" (default) or "mysql"
	DBPath        string // sqlite store file
	GeminiAPIKey  string
	VisionModel   string
	TextModel     string
	TesseractLang string
	RedisAddr     string // empty disables the recommendation cache
	AMQPURL       string // empty disables order events
	ReportsDir    string
	FormsDir      string // empty means the OS temp dir
}

func Load() Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("PHARMACY_DB_PATH", "data/pharmacy.db"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		VisionModel:   getEnv("GEMINI_VISION_MODEL", "gemini-1.5-flash"),
		TextModel:     getEnv("GEMINI_TEXT_MODEL", "gemini-1.5-flash"),
		TesseractLang: getEnv("TESSERACT_LANG", "eng"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AMQPURL:       os.Getenv("RABBITMQ_URL"),
		ReportsDir:    getEnv("PDF_REPORTS_DIR", "pdf_reports"),
		FormsDir:      os.Getenv("ORDER_FORMS_DIR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
