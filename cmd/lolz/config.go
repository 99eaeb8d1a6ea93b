package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	lolz "github.com/jamesprial/go-lolz-api-wrapper"
)

// profile is the optional YAML file passed with --config.
//
//	token: "..."
//	base_url: https://api.lolz.guru/
//	timeout: 15s
//	rate_limit:
//	  requests_per_minute: 20
//	  burst: 5
type profile struct {
	Token     string        `yaml:"token"`
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Debug     bool          `yaml:"debug"`
	RateLimit *struct {
		RequestsPerMinute float64 `yaml:"requests_per_minute"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &p, nil
}

// globalOptions holds the persistent flags.
type globalOptions struct {
	token      string
	baseURL    string
	configPath string
	debug      bool
}

// resolveConfig layers the environment, the profile file and the flags, in
// increasing order of precedence.
func resolveConfig(opts *globalOptions) (*lolz.Config, error) {
	cfg := &lolz.Config{}
	if os.Getenv("LOLZ_TOKEN") != "" {
		envCfg, err := lolz.ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		cfg = envCfg
	}

	if opts.configPath != "" {
		p, err := loadProfile(opts.configPath)
		if err != nil {
			return nil, err
		}
		applyProfile(cfg, p)
	}

	if opts.token != "" {
		cfg.Token = opts.token
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.debug {
		cfg.Debug = true
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("no access token: use --token, LOLZ_TOKEN or the token key of --config")
	}
	return cfg, nil
}

func applyProfile(cfg *lolz.Config, p *profile) {
	if p.Token != "" {
		cfg.Token = p.Token
	}
	if p.BaseURL != "" {
		cfg.BaseURL = p.BaseURL
	}
	if p.UserAgent != "" {
		cfg.UserAgent = p.UserAgent
	}
	if p.Timeout > 0 {
		cfg.Timeout = p.Timeout
	}
	if p.Debug {
		cfg.Debug = true
	}
	if p.RateLimit != nil {
		cfg.RateLimit = &lolz.RateLimitConfig{
			RequestsPerMinute: p.RateLimit.RequestsPerMinute,
			Burst:             p.RateLimit.Burst,
		}
	}
}
