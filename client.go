package lolz

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	pkgerrs "github.com/jamesprial/go-lolz-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

const (
	// Version is the library version reported in the default user agent.
	Version = "0.1.0"
	// DefaultBaseURL is the default Lolz API base URL
	DefaultBaseURL = "https://api.lolz.guru/"
	// DefaultUserAgent is the default user agent string
	DefaultUserAgent = "go-lolz-api-wrapper/" + Version
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// RateLimitConfig controls optional client-side throttling.
type RateLimitConfig = internal.RateLimitConfig

// Config holds the configuration for the Lolz client.
//
// Only Token is required:
//
//	config := &Config{
//		Token: "your-access-token",
//	}
type Config struct {
	// Token is the OAuth access token sent as "Authorization: Bearer <Token>".
	Token string

	// BaseURL for the Lolz API.
	// Defaults to DefaultBaseURL if not specified.
	BaseURL string

	// UserAgent identifies your application.
	// Defaults to DefaultUserAgent if not specified.
	UserAgent string

	// HTTPClient to use for requests. It is copied, never modified, so one
	// client can be shared between several tokens.
	// Defaults to a client with Timeout if not specified.
	HTTPClient *http.Client

	// Timeout for the default HTTP client. Ignored when HTTPClient is set.
	// Defaults to DefaultTimeout.
	Timeout time.Duration

	// RateLimit enables client-side throttling. Nil sends requests as fast as
	// the caller issues them.
	RateLimit *RateLimitConfig

	// Logger for structured diagnostics. Every request is logged at debug level.
	Logger *zerolog.Logger

	// Debug dumps full requests and responses to Logger at debug level, with
	// the token redacted. Without a Logger, dumps go to stderr.
	Debug bool
}

// Client is the Lolz API client. Each method issues exactly one HTTP
// request and returns the decoded JSON body. A Client is safe for concurrent
// use by multiple goroutines.
type Client struct {
	client *internal.Client
	config Config
}

// NewClient creates a new Lolz client with the provided configuration.
// config is not modified. The session is built immediately; no request is
// sent until an endpoint method is called.
//
// Returns a *errors.ConfigError if config is nil or holds an invalid token,
// base URL, user agent or rate limit.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, &pkgerrs.ConfigError{Field: "Config", Message: "config cannot be nil"}
	}

	cfg := *config
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	logger := cfg.Logger
	if cfg.Debug {
		if logger == nil {
			l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			logger = &l
		}
		dbg := *httpClient
		dbg.Transport = internal.NewDebugTransport(httpClient.Transport, *logger)
		httpClient = &dbg
	}

	ic, err := internal.NewClient(httpClient, cfg.Token, cfg.BaseURL, cfg.UserAgent, cfg.RateLimit, logger)
	if err != nil {
		return nil, err
	}

	return &Client{client: ic, config: cfg}, nil
}

// New creates a client for token with every other setting at its default.
func New(token string) (*Client, error) {
	return NewClient(&Config{Token: token})
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.client.BaseURL.String()
}

func (c *Client) newRequest(ctx context.Context, ep internal.Endpoint, params *internal.Params, pathArgs ...any) (*http.Request, error) {
	path, err := ep.Resolve(pathArgs...)
	if err != nil {
		return nil, err
	}
	return c.client.NewRequest(internal.WithOperation(ctx, ep.Name), ep.Method, path, params)
}

// call performs ep and decodes the JSON object it returns.
func (c *Client) call(ctx context.Context, ep internal.Endpoint, params *internal.Params, pathArgs ...any) (types.Response, error) {
	req, err := c.newRequest(ctx, ep, params, pathArgs...)
	if err != nil {
		return nil, err
	}

	var out types.Response
	if _, err := c.client.Do(req, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, &pkgerrs.ParseError{Operation: ep.Name, Message: "response is not a JSON object"}
	}
	return out, nil
}

// callBinary performs ep and returns the raw body.
func (c *Client) callBinary(ctx context.Context, ep internal.Endpoint, params *internal.Params, pathArgs ...any) (*types.Binary, error) {
	req, err := c.newRequest(ctx, ep, params, pathArgs...)
	if err != nil {
		return nil, err
	}

	resp, body, err := c.client.DoRaw(req)
	if err != nil {
		return nil, err
	}
	return &types.Binary{ContentType: resp.Header.Get("Content-Type"), Data: body}, nil
}
