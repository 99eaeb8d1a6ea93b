package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	pkgerrs "github.com/jamesprial/go-lolz-api-wrapper/pkg/errors"
)

// Client manages communication with the Lolz API over one authenticated
// session.
type Client struct {
	client    *http.Client
	BaseURL   *url.URL
	UserAgent string
	logger    zerolog.Logger

	limiter        *rate.Limiter
	mu             sync.Mutex
	forceWaitUntil time.Time
}

// RateLimitConfig controls how requests are throttled before reaching the API.
type RateLimitConfig struct {
	// RequestsPerMinute caps steady-state throughput. Defaults to 60 if zero.
	RequestsPerMinute float64
	// Burst allows short spikes above the steady-state rate. Defaults to 10 if zero.
	Burst int
}

const (
	DefaultRequestsPerMinute = 60
	DefaultRateLimitBurst    = 10
	SecondsPerMinute         = 60.0
	ParseFloatBitSize        = 64

	// MaxServerDelay caps how long Retry-After or X-Ratelimit-Reset can
	// hold back later requests.
	MaxServerDelay = 5 * time.Minute

	formContentType = "application/x-www-form-urlencoded"
)

type operationKey struct{}

// WithOperation tags ctx with the operation name used in logs and metrics.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

// OperationFrom returns the operation name stored by WithOperation.
func OperationFrom(ctx context.Context) string {
	if name, ok := ctx.Value(operationKey{}).(string); ok && name != "" {
		return name
	}
	return "unknown"
}

// NewClient returns a new Lolz API client authenticated with authToken.
// A nil httpClient means http.DefaultClient; it is copied, not modified. A
// nil rateCfg disables client-side throttling and a nil logger disables logging.
func NewClient(httpClient *http.Client, authToken string, baseURL string, userAgent string, rateCfg *RateLimitConfig, logger *zerolog.Logger) (*Client, error) {
	if err := defaultValidator.ValidateToken(authToken); err != nil {
		return nil, err
	}
	if err := defaultValidator.ValidateUserAgent(userAgent); err != nil {
		return nil, err
	}
	if err := defaultValidator.ValidateRateLimit(rateCfg); err != nil {
		return nil, err
	}
	parsedURL, err := defaultValidator.ValidateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		client:    NewSession(httpClient, authToken),
		BaseURL:   parsedURL,
		UserAgent: userAgent,
		logger:    zerolog.Nop(),
	}
	if logger != nil {
		c.logger = *logger
	}
	if rateCfg != nil {
		c.limiter = buildLimiter(*rateCfg)
	}

	return c, nil
}

// NewRequest creates an API request. path is resolved relative to BaseURL.
// GET and HEAD requests carry params in the query string; other verbs carry
// them as a urlencoded form, or as multipart/form-data when a file is attached.
func (c *Client) NewRequest(ctx context.Context, method, path string, params *Params) (*http.Request, error) {
	u, err := c.BaseURL.Parse(path)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: OperationFrom(ctx), Err: err}
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case method == http.MethodGet || method == http.MethodHead:
		if params.HasFiles() {
			return nil, &pkgerrs.ClientError{Operation: OperationFrom(ctx), Message: "file uploads require a request body"}
		}
		if !params.Empty() {
			q := u.Query()
			for key, vals := range params.Values() {
				for _, v := range vals {
					q.Add(key, v)
				}
			}
			u.RawQuery = q.Encode()
		}
	case params.HasFiles():
		body, contentType, err = encodeMultipart(params)
		if err != nil {
			return nil, &pkgerrs.ClientError{Operation: OperationFrom(ctx), Err: err}
		}
	case !params.Empty():
		body = strings.NewReader(params.Values().Encode())
		contentType = formContentType
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: OperationFrom(ctx), Err: err}
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// Do sends an API request and decodes the JSON response body into v. A
// non-2xx status is returned as an *errors.APIError, a transport failure as
// an *errors.RequestError and an undecodable body as an *errors.ParseError.
func (c *Client) Do(req *http.Request, v any) (*http.Response, error) {
	resp, body, err := c.DoRaw(req)
	if err != nil {
		return resp, err
	}

	if v != nil {
		if err := decodeJSON(body, v); err != nil {
			return resp, &pkgerrs.ParseError{Operation: OperationFrom(req.Context()), Body: body, Err: err}
		}
	}

	return resp, nil
}

// DoRaw sends an API request and returns the raw response body of a 2xx
// response.
func (c *Client) DoRaw(req *http.Request) (*http.Response, []byte, error) {
	operation := OperationFrom(req.Context())

	if err := c.waitForRateLimit(req.Context()); err != nil {
		return nil, nil, &pkgerrs.RequestError{Operation: operation, Method: req.Method, URL: req.URL.String(), Err: err}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		observeRequest(operation, req.Method, 0, elapsed)
		c.logger.Debug().Err(err).
			Str("operation", operation).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", elapsed).
			Msg("lolz api request failed")
		return nil, nil, &pkgerrs.RequestError{Operation: operation, Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	observeRequest(operation, req.Method, resp.StatusCode, elapsed)
	c.logger.Debug().
		Str("operation", operation).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", elapsed).
		Msg("lolz api request")
	if err != nil {
		return resp, nil, &pkgerrs.RequestError{Operation: operation, Method: req.Method, URL: req.URL.String(), Err: err}
	}

	c.applyRateHeaders(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, body, &pkgerrs.APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     req.Method,
			URL:        req.URL.String(),
			Body:       body,
		}
	}

	return resp, body, nil
}

func decodeJSON(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("empty response body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}

func encodeMultipart(params *Params) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	values := params.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range values[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	for _, part := range params.files {
		if part.file.Reader == nil {
			return nil, "", fmt.Errorf("file for field %q has no reader", part.field)
		}
		name := part.file.Name
		if name == "" {
			name = part.field
		}
		fw, err := w.CreateFormFile(part.field, name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, part.file.Reader); err != nil {
			return nil, "", fmt.Errorf("read file for field %q: %w", part.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func buildLimiter(cfg RateLimitConfig) *rate.Limiter {
	requestsPerMinute := cfg.RequestsPerMinute
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}

	limitPerSecond := rate.Limit(requestsPerMinute / SecondsPerMinute)
	if limitPerSecond <= 0 {
		limitPerSecond = rate.Limit(1)
	}

	return rate.NewLimiter(limitPerSecond, burst)
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}

	if err := c.waitForForcedDelay(ctx); err != nil {
		return err
	}

	return c.limiter.Wait(ctx)
}

func (c *Client) waitForForcedDelay(ctx context.Context) error {
	for {
		c.mu.Lock()
		waitUntil := c.forceWaitUntil
		c.mu.Unlock()

		if waitUntil.IsZero() {
			return nil
		}

		now := time.Now()
		if !now.Before(waitUntil) {
			c.clearForcedDelay(waitUntil)
			return nil
		}

		timer := time.NewTimer(waitUntil.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			c.clearForcedDelay(waitUntil)
		}
	}
}

func (c *Client) clearForcedDelay(previous time.Time) {
	c.mu.Lock()
	if previous.Equal(c.forceWaitUntil) {
		c.forceWaitUntil = time.Time{}
	}
	c.mu.Unlock()
}

// applyRateHeaders pushes back later requests when the server asks for it.
// The current request is never replayed.
func (c *Client) applyRateHeaders(resp *http.Response) {
	if c.limiter == nil {
		return
	}

	if seconds, ok := parseSeconds(resp.Header.Get("Retry-After")); ok && seconds > 0 {
		c.deferRequests(secondsToDuration(seconds))
	}

	remaining, okRemaining := parseSeconds(resp.Header.Get("X-Ratelimit-Remaining"))
	resetSeconds, okReset := parseSeconds(resp.Header.Get("X-Ratelimit-Reset"))
	if !okRemaining || !okReset || resetSeconds <= 0 {
		return
	}

	if remaining <= 1 {
		c.deferRequests(secondsToDuration(resetSeconds))
	}
}

// parseSeconds accepts finite decimal header values only.
func parseSeconds(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, ParseFloatBitSize)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func secondsToDuration(seconds float64) time.Duration {
	if seconds >= MaxServerDelay.Seconds() {
		return MaxServerDelay
	}
	return time.Duration(seconds * float64(time.Second))
}

func (c *Client) deferRequests(d time.Duration) {
	if d <= 0 {
		return
	}

	until := time.Now().Add(d)

	c.mu.Lock()
	if until.After(c.forceWaitUntil) {
		c.forceWaitUntil = until
	}
	c.mu.Unlock()
}
