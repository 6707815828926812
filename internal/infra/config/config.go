package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization

	"github.com/joho/godotenv"
)

// Customer source kinds.
const (
	SourceXLSX     = "xlsx"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

var ErrMissingTelegramToken = fmt.Errorf("TELEGRAM_TOKEN is not set")
var ErrMissingManagerChatID = fmt.Errorf("MANAGER_CHAT_ID is not set")
var ErrMissingDatabaseURL = fmt.Errorf("DATABASE_URL is not set")

// AppConfig holds all configuration for the application
type AppConfig struct {
	CustomerSource   string // xlsx, csv or postgres
	SpreadsheetPath  string
	SpreadsheetSheet string // Empty selects the first sheet
	DatabaseURL      string
	TelegramToken    string
	ManagerChatID    int64 // Chat receiving the daily digest
	LogLevel         string
	Environment      string
	CronSpecDigest   string
}

// Load reads configuration from environment variables and .env file (if present).
// Settings only needed by some commands are checked by the Validate* methods.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		CustomerSource:   strings.ToLower(getenv("CUSTOMER_SOURCE", SourceXLSX)),
		SpreadsheetPath:  getenv("SPREADSHEET_PATH", "Customers.xlsx"),
		SpreadsheetSheet: os.Getenv("SPREADSHEET_SHEET"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "warn")),
		Environment:      strings.ToLower(getenv("ENVIRONMENT", "development")),
		CronSpecDigest:   getenv("CRON_SPEC_DAILY_DIGEST", "0 8 * * *"), // Default: 8:00 AM daily
	}

	switch cfg.CustomerSource {
	case SourceXLSX, SourceCSV, SourcePostgres:
	default:
		return nil, fmt.Errorf("invalid CUSTOMER_SOURCE %q (want xlsx, csv or postgres)", cfg.CustomerSource)
	}

	if chatIDStr := os.Getenv("MANAGER_CHAT_ID"); chatIDStr != "" {
		id, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MANAGER_CHAT_ID: %w", err)
		}
		cfg.ManagerChatID = id
	}

	return cfg, nil
}

// ValidateNotifier checks the settings needed to deliver Telegram digests.
func (c *AppConfig) ValidateNotifier() error {
	if c.TelegramToken == "" {
		return ErrMissingTelegramToken
	}
	if c.ManagerChatID == 0 {
		return ErrMissingManagerChatID
	}
	return nil
}

// ValidateDatabase checks the settings needed by the postgres customer source.
// The source may be selected by flag, so it does not look at CustomerSource.
func (c *AppConfig) ValidateDatabase() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
