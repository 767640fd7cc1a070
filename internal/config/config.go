// Package config builds the bot configuration from environment variables.
// Credentials and endpoints for the three external services (Shopify,
// OpenAI, Judge.me) are required; file paths and tuning knobs have defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrMissingConfig = errors.New("missing configuration")

// Config holds everything the bot needs for one run. It is constructed once
// in the cmd layer and passed to each component, so tests can substitute
// fake endpoints and clients.
type Config struct {
	// Shopify
	ShopDomain   string // e.g. "my-store.myshopify.com"
	ShopifyToken string
	CollectionID string

	// OpenAI
	OpenAIKey   string
	OpenAIModel string

	// Judge.me
	JudgemeToken   string
	JudgemeBaseURL string

	// Local state files
	ContextFile  string
	TitlesFile   string
	ErrorLogFile string
	NamesFile    string

	// Tuning
	Delay       time.Duration // pause between products
	MaxAttempts int           // generation retries per product
}

// Load reads the configuration from the environment and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		ShopDomain:     os.Getenv("SHOP_DOMAIN"),
		ShopifyToken:   os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		CollectionID:   os.Getenv("COLLECTION_ID"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getenvDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		JudgemeToken:   os.Getenv("JUDGEME_API_TOKEN"),
		JudgemeBaseURL: getenvDefault("JUDGEME_BASE_URL", "https://judge.me"),
		ContextFile:    getenvDefault("CONTEXT_FILE", "context.json"),
		TitlesFile:     getenvDefault("RECENT_TITLES_FILE", "recentTitles.json"),
		ErrorLogFile:   getenvDefault("ERROR_LOG_FILE", "error_reviews.json"),
		NamesFile:      getenvDefault("NAMES_FILE", "brazilianNames.json"),
		Delay:          10 * time.Second,
		MaxAttempts:    5,
	}

	if v := os.Getenv("REVIEW_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REVIEW_DELAY %q: %w", v, err)
		}
		cfg.Delay = d
	}

	if v := os.Getenv("MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid MAX_ATTEMPTS %q", v)
		}
		cfg.MaxAttempts = n
	}

	return cfg, cfg.Validate()
}

// Validate checks that every required credential is present.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"SHOP_DOMAIN", c.ShopDomain},
		{"SHOPIFY_ACCESS_TOKEN", c.ShopifyToken},
		{"COLLECTION_ID", c.CollectionID},
		{"OPENAI_API_KEY", c.OpenAIKey},
		{"JUDGEME_API_TOKEN", c.JudgemeToken},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s environment variable is required", ErrMissingConfig, r.name)
		}
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
