package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBackend = errors.New("unknown classifier backend")
	ErrUnknownStorage = errors.New("unknown storage type")
)

// ValidationError reports a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Message)
}

// Validate checks the configuration for values neither pipeline can run
// with.
func (c *Config) Validate() error {
	switch c.Listing.Type {
	case "api":
		if c.Listing.BaseURL == "" {
			return &ValidationError{Field: "listing.base_url", Message: "is required"}
		}
		if c.Listing.Pages < 1 {
			return &ValidationError{Field: "listing.pages", Message: "must be at least 1"}
		}
		if c.Listing.PageSize < 1 {
			return &ValidationError{Field: "listing.page_size", Message: "must be at least 1"}
		}
	case "feed":
		if c.Listing.FeedURL == "" {
			return &ValidationError{Field: "listing.feed_url", Message: "is required"}
		}
	default:
		return &ValidationError{Field: "listing.type", Message: "must be api or feed"}
	}

	switch c.Classifier.Backend {
	case "gemini":
		if c.Classifier.APIKey == "" {
			return &ValidationError{Field: "classifier.api_key", Message: "is required for gemini (set GEMINI_API_KEY)"}
		}
	case "ollama":
		if c.Classifier.OllamaHost == "" {
			return &ValidationError{Field: "classifier.ollama_host", Message: "is required for ollama"}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Classifier.Backend)
	}
	if c.Classifier.Model == "" {
		return &ValidationError{Field: "classifier.model", Message: "is required"}
	}

	if c.Storage.URLs.Type != "csv" {
		return fmt.Errorf("%w for url list: %q", ErrUnknownStorage, c.Storage.URLs.Type)
	}
	switch c.Storage.Results.Type {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("%w for results: %q", ErrUnknownStorage, c.Storage.Results.Type)
	}
	if c.Storage.URLs.DSN == "" {
		return &ValidationError{Field: "storage.urls.dsn", Message: "is required"}
	}
	if c.Storage.Results.DSN == "" {
		return &ValidationError{Field: "storage.results.dsn", Message: "is required"}
	}

	for _, s := range c.Classifier.SafetySettings {
		if s.Threshold < 0 || s.Threshold > 4 {
			return &ValidationError{Field: "classifier.safety_settings", Message: fmt.Sprintf("threshold for %s must be 0-4", s.Category)}
		}
	}

	return nil
}
