package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// config holds everything the server reads from the environment. It is
// built once at startup and passed into every component.
type config struct {
	// APIKey is the YNAB personal access token (YNAB_API_KEY, required)
	APIKey string

	// BaseURL overrides the API base URL (YNAB_BASE_URL)
	BaseURL string

	// OutputDir is the base directory for spooled results
	// (YNAB_OUTPUT_DIR, default <tmp>/ynab-mcp)
	OutputDir string

	// SentryDSN enables Sentry error tracking (SENTRY_DSN)
	SentryDSN string

	// Debug enables debug logging (YNAB_DEBUG)
	Debug bool
}

func loadConfig() (*config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &config{
		APIKey:    os.Getenv("YNAB_API_KEY"),
		BaseURL:   os.Getenv("YNAB_BASE_URL"),
		OutputDir: os.Getenv("YNAB_OUTPUT_DIR"),
		SentryDSN: os.Getenv("SENTRY_DSN"),
		Debug:     os.Getenv("YNAB_DEBUG") != "",
	}

	if cfg.APIKey == "" {
		return nil, errors.New("YNAB_API_KEY environment variable is required")
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(os.TempDir(), "ynab-mcp")
	}

	return cfg, nil
}
