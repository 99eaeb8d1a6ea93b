package lolz

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by ConfigFromEnv.
const EnvPrefix = "LOLZ"

// envConfig mirrors Config for environment parsing.
// Example: LOLZ_TOKEN, LOLZ_BASE_URL, LOLZ_REQUESTS_PER_MINUTE
type envConfig struct {
	Token     string        `envconfig:"TOKEN" required:"true"`
	BaseURL   string        `envconfig:"BASE_URL" default:"https://api.lolz.guru/"`
	UserAgent string        `envconfig:"USER_AGENT"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`

	// Throttling is off unless LOLZ_REQUESTS_PER_MINUTE is set.
	RequestsPerMinute float64 `envconfig:"REQUESTS_PER_MINUTE"`
	RateBurst         int     `envconfig:"RATE_BURST"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv builds a Config from LOLZ_* environment variables. Only
// LOLZ_TOKEN is required.
func ConfigFromEnv() (*Config, error) {
	var env envConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	cfg := &Config{
		Token:     env.Token,
		BaseURL:   env.BaseURL,
		UserAgent: env.UserAgent,
		Timeout:   env.Timeout,
		Debug:     env.Debug,
	}
	if env.RequestsPerMinute > 0 || env.RateBurst > 0 {
		cfg.RateLimit = &RateLimitConfig{
			RequestsPerMinute: env.RequestsPerMinute,
			Burst:             env.RateBurst,
		}
	}
	return cfg, nil
}

// NewFromEnv creates a client configured by ConfigFromEnv.
func NewFromEnv() (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg)
}
