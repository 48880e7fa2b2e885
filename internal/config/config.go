package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	Telegram TelegramConfig
	Catalog  CatalogConfig
	Shop     ShopConfig
}

// TelegramConfig contains the bot token and the operator chat.
type TelegramConfig struct {
	BotToken string
	// AdminChatID is the only chat allowed to manage the catalog; order
	// notifications are delivered to it as well.
	AdminChatID int64
}

// CatalogConfig contains the catalog file location and the re-read guard interval.
type CatalogConfig struct {
	File          string
	CheckInterval time.Duration
}

// ShopConfig contains storefront parameters.
type ShopConfig struct {
	// MinQuantity is the smallest orderable piece count.
	MinQuantity int
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Telegram
	cfg.Telegram = TelegramConfig{
		BotToken:    getEnv("BOT_TOKEN", ""),
		AdminChatID: getEnvInt64("ADMIN_CHAT_ID", 0),
	}

	// Catalog
	cfg.Catalog = CatalogConfig{
		File: getEnv("CATALOG_FILE", "flowers.json"),
	}
	var err error
	if cfg.Catalog.CheckInterval, err = parseDurationEnv("CATALOG_CHECK_INTERVAL", "5m"); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CHECK_INTERVAL: %w", err)
	}

	// Shop
	cfg.Shop = ShopConfig{
		MinQuantity: getEnvInt("MIN_QUANTITY", 10),
	}
	if cfg.Shop.MinQuantity < 1 {
		return nil, errors.New("MIN_QUANTITY must be >= 1")
	}

	if cfg.Telegram.BotToken == "" {
		return nil, errors.New("BOT_TOKEN must be set for the Telegram bot")
	}
	if cfg.Telegram.AdminChatID == 0 {
		return nil, errors.New("ADMIN_CHAT_ID must be set to the operator chat id")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getEnvInt64 returns the value of an environment variable as an int64 or a default if empty/invalid.
func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
