package internal

import (
	"fmt"
	"net/url"
	"strings"

	pkgerrs "github.com/jamesprial/go-lolz-api-wrapper/pkg/errors"
)

const (
	// User agent constraints
	maxUserAgentLength = 256

	// Short links are user chosen profile slugs
	maxShortLinkLength = 100
)

var defaultValidator = NewValidator()

// Validator checks client configuration and path arguments before anything
// is sent to the API.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateToken rejects empty tokens and tokens that would break the
// Authorization header.
func (v *Validator) ValidateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return &pkgerrs.ConfigError{Field: "Token", Message: "access token cannot be empty"}
	}
	if strings.ContainsAny(token, "\r\n") {
		return &pkgerrs.ConfigError{Field: "Token", Message: "access token cannot contain newline characters"}
	}
	return nil
}

// ValidateUserAgent validates the User-Agent string to prevent header injection attacks.
func (v *Validator) ValidateUserAgent(ua string) error {
	if len(ua) == 0 {
		return &pkgerrs.ConfigError{Field: "UserAgent", Message: "user agent cannot be empty"}
	}
	if strings.ContainsAny(ua, "\r\n") {
		return &pkgerrs.ConfigError{Field: "UserAgent", Message: "user agent cannot contain newline characters"}
	}
	if len(ua) > maxUserAgentLength {
		return &pkgerrs.ConfigError{Field: "UserAgent", Message: fmt.Sprintf("user agent too long (max %d characters)", maxUserAgentLength)}
	}
	return nil
}

// ValidateBaseURL parses raw and requires an absolute http(s) URL. The
// returned URL always ends with a slash so relative paths resolve beneath it.
func (v *Validator) ValidateBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: "host cannot be empty"}
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// ValidateRateLimit rejects negative throttling settings.
func (v *Validator) ValidateRateLimit(cfg *RateLimitConfig) error {
	if cfg == nil {
		return nil
	}
	if cfg.RequestsPerMinute < 0 {
		return &pkgerrs.ConfigError{Field: "RateLimit.RequestsPerMinute", Message: "cannot be negative"}
	}
	if cfg.Burst < 0 {
		return &pkgerrs.ConfigError{Field: "RateLimit.Burst", Message: "cannot be negative"}
	}
	return nil
}

// ValidatePathParam checks a value that will be embedded in a URL path.
// Integer identifiers must be positive; string identifiers (short links)
// must be non-empty, contain no path separators and not be a dot segment.
func (v *Validator) ValidatePathParam(name string, value any) error {
	switch id := value.(type) {
	case int:
		if id <= 0 {
			return &pkgerrs.ConfigError{Field: name, Message: fmt.Sprintf("must be a positive identifier, got %d", id)}
		}
	case int64:
		if id <= 0 {
			return &pkgerrs.ConfigError{Field: name, Message: fmt.Sprintf("must be a positive identifier, got %d", id)}
		}
	case string:
		if id == "" {
			return &pkgerrs.ConfigError{Field: name, Message: "cannot be empty"}
		}
		if len(id) > maxShortLinkLength {
			return &pkgerrs.ConfigError{Field: name, Message: fmt.Sprintf("cannot exceed %d characters", maxShortLinkLength)}
		}
		if strings.ContainsAny(id, "/\\?#") {
			return &pkgerrs.ConfigError{Field: name, Message: fmt.Sprintf("contains a reserved character: %q", id)}
		}
		if id == "." || id == ".." {
			return &pkgerrs.ConfigError{Field: name, Message: "cannot be a dot segment"}
		}
	default:
		return &pkgerrs.ConfigError{Field: name, Message: fmt.Sprintf("unsupported identifier type %T", value)}
	}
	return nil
}
