package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load builds the run configuration with precedence:
//  1. Environment variables (highest priority, .env files included)
//  2. Configuration file (see ConfigFilePath)
//  3. Default values
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read builds the configuration the same way as Load but skips validation,
// for tools that only use part of it.
func Read() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := Default()

	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	if err := LoadConfigFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env.local then .env. Variables already present in the
// environment are never overwritten, and missing files are ignored.
func loadEnvFiles() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Listing.Type, "NEWSPULSE_LISTING_TYPE")
	setString(&cfg.Listing.BaseURL, "NEWSPULSE_LISTING_BASE_URL")
	setString(&cfg.Listing.FeedURL, "NEWSPULSE_LISTING_FEED_URL")
	setString(&cfg.Listing.Host, "NEWSPULSE_LISTING_HOST")
	setInt(&cfg.Listing.CategoryID, "NEWSPULSE_LISTING_CATEGORY_ID")
	setInt(&cfg.Listing.Pages, "NEWSPULSE_LISTING_PAGES")
	setInt(&cfg.Listing.PageSize, "NEWSPULSE_LISTING_PAGE_SIZE")

	setString(&cfg.Classifier.Backend, "NEWSPULSE_CLASSIFIER_BACKEND")
	setString(&cfg.Classifier.Model, "NEWSPULSE_CLASSIFIER_MODEL")
	setString(&cfg.Classifier.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Classifier.OllamaHost, "OLLAMA_HOST")

	setString(&cfg.Storage.URLs.DSN, "NEWSPULSE_URLS_DSN")
	setString(&cfg.Storage.Results.Type, "NEWSPULSE_RESULTS_TYPE")
	setString(&cfg.Storage.Results.DSN, "NEWSPULSE_RESULTS_DSN")

	if val := os.Getenv("NEWSPULSE_HTTP_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.HTTP.Timeout = d
		}
	}

	setString(&cfg.Logging.Level, "NEWSPULSE_LOG_LEVEL")
	setString(&cfg.API.Addr, "NEWSPULSE_API_ADDR")
}

func setString(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func setInt(dst *int, key string) {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*dst = n
		}
	}
}
