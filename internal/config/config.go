package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contiene la configuración del servidor leída del entorno.
type Config struct {
	ServerPort   string
	AllowOrigins string

	// Row store (Supabase/PostgREST)
	RowStoreURL     string
	RowStoreKey     string
	RowStoreTimeout time.Duration

	// SMTP
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	NotifyEmail   string

	// S3
	S3Bucket string
	S3Region string

	// Refresco periódico de colecciones (0 = deshabilitado)
	RefreshInterval time.Duration
}

// LoadConfig construye la configuración a partir de variables de entorno.
// ROW_STORE_URL y ROW_STORE_KEY son obligatorias, el resto tiene defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		AllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		RowStoreURL:     os.Getenv("ROW_STORE_URL"),
		RowStoreKey:     os.Getenv("ROW_STORE_KEY"),
		RowStoreTimeout: getEnvDuration("ROW_STORE_TIMEOUT_SECONDS", 15*time.Second),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "WeShow"),
		SMTPFromEmail:   os.Getenv("SMTP_FROM_EMAIL"),
		NotifyEmail:     os.Getenv("NOTIFY_EMAIL"),
		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		RefreshInterval: getEnvMinutes("COLLECTION_REFRESH_MINUTES", 0),
	}

	if cfg.RowStoreURL == "" {
		return nil, fmt.Errorf("ROW_STORE_URL is required")
	}
	if cfg.RowStoreKey == "" {
		return nil, fmt.Errorf("ROW_STORE_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func getEnvMinutes(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes < 0 {
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}
