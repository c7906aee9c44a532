// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	TelegramToken   string
	InviteLink      string
	SpreadsheetID   string
	CredentialsFile string
	Port            string
	PollTimeout     time.Duration
	HealthTimeout   time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	pollSeconds := getEnvInt("POLL_TIMEOUT_SECONDS", 30)
	if pollSeconds <= 0 {
		pollSeconds = 30
	}

	cfg := &Config{
		TelegramToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		InviteLink:      getEnv("GROUP_INVITE_LINK", ""),
		SpreadsheetID:   getEnv("GOOGLE_SHEET_ID", ""),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		Port:            getEnv("PORT", "8080"),
		PollTimeout:     time.Duration(pollSeconds) * time.Second,
		HealthTimeout:   5 * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN cannot be empty")
	}
	if c.InviteLink == "" {
		return fmt.Errorf("GROUP_INVITE_LINK cannot be empty")
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SHEET_ID cannot be empty")
	}
	if c.CredentialsFile == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS_FILE cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
