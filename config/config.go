package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	TesseractLanguage string
	RedisAddr         string
	CacheTTL          time.Duration
	MaxFileSize       int64

	// Placeholder borrower cash-flow figures, used for the DSR and safety
	// margin ratios until real income data is collected per application.
	ReferenceMonthlyIncome  float64
	ReferenceMonthlyExpense float64
}

func LoadConfig() *Config {
	cfg := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		TesseractDataPath:       getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		TesseractLanguage:       getEnv("TESSERACT_LANG", "vie"),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		CacheTTL:                time.Hour,
		MaxFileSize:             10 * 1024 * 1024, // 10 MB
		ReferenceMonthlyIncome:  getEnvFloat("REFERENCE_MONTHLY_INCOME", 100_000_000),
		ReferenceMonthlyExpense: getEnvFloat("REFERENCE_MONTHLY_EXPENSE", 45_000_000),
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.CacheTTL = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}
