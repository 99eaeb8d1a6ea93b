package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ChaosMode defines the type of chaos to inject
type ChaosMode int

const (
	// ChaosNone forwards requests unchanged
	ChaosNone ChaosMode = iota

	// ChaosConnectionReset fails the round trip outright
	ChaosConnectionReset

	// ChaosPartialRead fails while the body is being read
	ChaosPartialRead

	// ChaosSlowResponse delays the response until the request context ends
	ChaosSlowResponse

	// ChaosEmptyBody answers 200 with no body
	ChaosEmptyBody

	// ChaosInvalidJSON answers 200 with a truncated JSON document
	ChaosInvalidJSON

	// ChaosOversizedBody answers 200 with a very large JSON object
	ChaosOversizedBody

	// ChaosDNSFailure fails as if the host could not be resolved
	ChaosDNSFailure

	// ChaosIntermittent randomly applies one of the failure modes
	ChaosIntermittent
)

func (m ChaosMode) String() string {
	switch m {
	case ChaosNone:
		return "none"
	case ChaosConnectionReset:
		return "connection-reset"
	case ChaosPartialRead:
		return "partial-read"
	case ChaosSlowResponse:
		return "slow-response"
	case ChaosEmptyBody:
		return "empty-body"
	case ChaosInvalidJSON:
		return "invalid-json"
	case ChaosOversizedBody:
		return "oversized-body"
	case ChaosDNSFailure:
		return "dns-failure"
	case ChaosIntermittent:
		return "intermittent"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ChaosConfig configures the chaos transport behavior
type ChaosConfig struct {
	// Mode determines which type of chaos to inject
	Mode ChaosMode

	// FailureRate determines probability of failure (0.0 to 1.0).
	// Only used for ChaosIntermittent.
	FailureRate float64

	// PartialReadBytes is how many bytes are served before a ChaosPartialRead failure
	PartialReadBytes int

	// OversizedBytes is the approximate body size for ChaosOversizedBody
	OversizedBytes int

	// Seed makes ChaosIntermittent reproducible
	Seed int64
}

// ChaosTransport is an http.RoundTripper that injects failures in front of
// a real transport.
type ChaosTransport struct {
	base   http.RoundTripper
	config ChaosConfig

	mu  sync.Mutex
	rnd *rand.Rand

	requests atomic.Uint64
}

// NewChaosTransport wraps base; a nil base uses http.DefaultTransport.
func NewChaosTransport(base http.RoundTripper, config ChaosConfig) *ChaosTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if config.PartialReadBytes <= 0 {
		config.PartialReadBytes = 8
	}
	if config.OversizedBytes <= 0 {
		config.OversizedBytes = 4 << 20
	}
	return &ChaosTransport{
		base:   base,
		config: config,
		rnd:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Requests reports how many round trips were attempted.
func (c *ChaosTransport) Requests() uint64 {
	return c.requests.Load()
}

func (c *ChaosTransport) pickMode() ChaosMode {
	if c.config.Mode != ChaosIntermittent {
		return c.config.Mode
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rnd.Float64() >= c.config.FailureRate {
		return ChaosNone
	}
	modes := []ChaosMode{
		ChaosConnectionReset,
		ChaosPartialRead,
		ChaosEmptyBody,
		ChaosInvalidJSON,
		ChaosDNSFailure,
	}
	return modes[c.rnd.Intn(len(modes))]
}

// RoundTrip implements http.RoundTripper
func (c *ChaosTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.requests.Add(1)

	switch c.pickMode() {
	case ChaosConnectionReset:
		return nil, errors.New("read: connection reset by peer")

	case ChaosDNSFailure:
		return nil, &DNSError{Err: "no such host", Server: req.URL.Host}

	case ChaosSlowResponse:
		<-req.Context().Done()
		return nil, req.Context().Err()

	case ChaosPartialRead:
		body := `{"thread":{"thread_id":1,"thread_title":"partial"}}`
		return NewMockResponseBuilder().
			WithBody(body).
			build(req, &partialReadCloser{reader: strings.NewReader(body), failAfter: c.config.PartialReadBytes}), nil

	case ChaosEmptyBody:
		return NewMockResponseBuilder().Build(req), nil

	case ChaosInvalidJSON:
		return NewMockResponseBuilder().WithBody(`{"threads":[{"thread_id":1,`).Build(req), nil

	case ChaosOversizedBody:
		var sb strings.Builder
		sb.WriteString(`{"blob":"`)
		sb.WriteString(strings.Repeat("x", c.config.OversizedBytes))
		sb.WriteString(`"}`)
		return NewMockResponseBuilder().WithBody(sb.String()).Build(req), nil
	}

	return c.base.RoundTrip(req)
}

// partialReadCloser is an io.ReadCloser that fails after reading a certain amount
type partialReadCloser struct {
	reader    io.Reader
	failAfter int
	totalRead int
}

func (p *partialReadCloser) Read(buf []byte) (int, error) {
	if p.totalRead >= p.failAfter {
		return 0, errors.New("connection reset during read")
	}

	if remaining := p.failAfter - p.totalRead; len(buf) > remaining {
		buf = buf[:remaining]
	}
	n, err := p.reader.Read(buf)
	p.totalRead += n
	return n, err
}

func (p *partialReadCloser) Close() error {
	return nil
}

// DNSError simulates DNS lookup failures
type DNSError struct {
	Err    string
	Server string
}

func (e *DNSError) Error() string {
	return fmt.Sprintf("lookup failed: %s (server: %s)", e.Err, e.Server)
}

func (e *DNSError) Temporary() bool { return true }

func (e *DNSError) Timeout() bool { return false }

// MockResponseBuilder helps build custom mock responses
type MockResponseBuilder struct {
	status  int
	body    string
	headers map[string]string
	delay   time.Duration
}

// NewMockResponseBuilder creates a new mock response builder
func NewMockResponseBuilder() *MockResponseBuilder {
	return &MockResponseBuilder{
		status:  http.StatusOK,
		headers: map[string]string{"Content-Type": "application/json"},
	}
}

// WithStatus sets the status code
func (b *MockResponseBuilder) WithStatus(code int) *MockResponseBuilder {
	b.status = code
	return b
}

// WithBody sets the response body
func (b *MockResponseBuilder) WithBody(body string) *MockResponseBuilder {
	b.body = body
	return b
}

// WithHeader adds a response header
func (b *MockResponseBuilder) WithHeader(key, value string) *MockResponseBuilder {
	b.headers[key] = value
	return b
}

// WithDelay sleeps before the response is returned
func (b *MockResponseBuilder) WithDelay(delay time.Duration) *MockResponseBuilder {
	b.delay = delay
	return b
}

// Build creates the response for req
func (b *MockResponseBuilder) Build(req *http.Request) *http.Response {
	return b.build(req, io.NopCloser(bytes.NewBufferString(b.body)))
}

func (b *MockResponseBuilder) build(req *http.Request, body io.ReadCloser) *http.Response {
	if b.delay > 0 {
		time.Sleep(b.delay)
	}

	header := make(http.Header)
	for k, v := range b.headers {
		header.Set(k, v)
	}

	return &http.Response{
		StatusCode: b.status,
		Status:     fmt.Sprintf("%d %s", b.status, http.StatusText(b.status)),
		Header:     header,
		Body:       body,
		Request:    req,
	}
}

// StaticTransport answers every request with the response produced by builder.
type StaticTransport struct {
	Builder *MockResponseBuilder
}

// RoundTrip implements http.RoundTripper
func (s StaticTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.Builder.Build(req), nil
}
