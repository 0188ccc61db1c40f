package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"optimizer/internal/model"
)

// Config keeps runtime settings for the bot and the order API.
type Config struct {
	TelegramToken string
	DatabaseURL   string
	WebAppURL     string
	HTTPAddr      string
	SessionTTL    time.Duration
	// RolePasswords gate role selection during registration. A shared static
	// secret per role is a placeholder capability check, not authentication.
	RolePasswords map[model.Role]string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is picked up when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		WebAppURL:     strings.TrimSpace(os.Getenv("WEBAPP_URL")),
		HTTPAddr:      strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		SessionTTL:    parseTTL(strings.TrimSpace(os.Getenv("SESSION_TTL"))),
		RolePasswords: map[model.Role]string{
			model.RoleChef:      envOr("CHEF_PASSWORD", "P123"),
			model.RoleFinancier: envOr("FINANCIER_PASSWORD", "F123"),
			model.RoleSupplier:  envOr("SUPPLIER_PASSWORD", "C123"),
		},
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "optimizer.db"
	}
	if cfg.WebAppURL == "" {
		cfg.WebAppURL = "https://optimizer.example.com"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8000"
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 30 * time.Minute
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func parseTTL(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		return 0
	}
	return ttl
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
