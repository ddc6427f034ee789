package config

import (
	"os"
	"strings"
)

type AppConfig struct {
	// Server
	HTTPAddr   string
	DealerName string

	// MongoDB
	DatabaseURL  string
	DatabaseName string

	// SMTP
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	SMTPSecure bool

	// Destination mailbox for lead notifications
	LeadTo string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	cfg := AppConfig{
		HTTPAddr:   getEnv("HTTP_ADDR", ":8000"),
		DealerName: getEnv("DEALER_NAME", "Best Deal Motors"),

		DatabaseURL:  getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "appdb"),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		SMTPSecure: strings.ToLower(getEnv("SMTP_SECURE", "false")) == "true",

		LeadTo: getEnv("LEAD_TO", "bestdealmotors1626@gmail.com"),
	}

	cfg.SMTPFrom = getEnv("SMTP_FROM", cfg.SMTPUser)
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = "noreply@example.com"
	}

	return cfg
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
