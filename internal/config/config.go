package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	JournalNone     = "none"
	JournalDynamoDB = "dynamodb"
	JournalBolt     = "bolt"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

type Config struct {
	DatabaseURL     string
	AppPort         string
	AppEnv          string
	VSTExpiryHours  int
	CallbackJournal string
	JournalBoltPath string
}

// Load reads the configuration from the environment, after loading .env when
// present. DATABASE_URL is the only required variable.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AppPort:         getenvDefault("APP_PORT", "8080"),
		AppEnv:          getenvDefault("APP_ENV", "production"),
		CallbackJournal: strings.ToLower(getenvDefault("CALLBACK_JOURNAL", JournalNone)),
		JournalBoltPath: getenvDefault("CALLBACK_JOURNAL_BOLT_PATH", "vst_callbacks.db"),
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	hours, err := strconv.Atoi(getenvDefault("VST_EXPIRY_HOURS", "24"))
	if err != nil || hours < 1 {
		return nil, fmt.Errorf("VST_EXPIRY_HOURS must be a positive integer, got %q", os.Getenv("VST_EXPIRY_HOURS"))
	}
	cfg.VSTExpiryHours = hours

	switch cfg.CallbackJournal {
	case JournalNone, JournalDynamoDB, JournalBolt:
	default:
		return nil, fmt.Errorf("CALLBACK_JOURNAL must be one of none, dynamodb, bolt, got %q", cfg.CallbackJournal)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
