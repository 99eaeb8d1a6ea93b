package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	pkgerrs "github.com/jamesprial/go-lolz-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

func TestNewClient_NoLimiterByDefault(t *testing.T) {
	client, err := NewClient(nil, "token", "https://example.com/api/", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if client.limiter != nil {
		t.Fatalf("expected no limiter without a rate limit config")
	}
}

func TestNewClient_DefaultRateLimiter(t *testing.T) {
	client, err := NewClient(nil, "token", "https://example.com/api/", "agent", &RateLimitConfig{}, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if client.limiter == nil {
		t.Fatalf("expected limiter to be initialized")
	}
	if got := client.limiter.Limit(); got != rate.Limit(1) {
		t.Errorf("expected default limit 1 req/sec, got %v", got)
	}
	if got := client.limiter.Burst(); got != 10 {
		t.Errorf("expected default burst of 10, got %d", got)
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"://bad", "ftp://example.com", "https://"} {
		_, err := NewClient(nil, "token", raw, "agent", nil, nil)
		if err == nil {
			t.Fatalf("expected error for base URL %q", raw)
		}

		var cfgErr *pkgerrs.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigError for %q, got %T", raw, err)
		}
		if cfgErr.Field != "BaseURL" {
			t.Errorf("expected BaseURL field, got %q", cfgErr.Field)
		}
	}
}

func TestNewClient_InvalidToken(t *testing.T) {
	for _, token := range []string{"", "   ", "abc\r\nX-Evil: 1"} {
		_, err := NewClient(nil, token, "https://example.com", "agent", nil, nil)
		var cfgErr *pkgerrs.ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "Token" {
			t.Fatalf("expected Token ConfigError for %q, got %v", token, err)
		}
	}
}

func TestNewClient_CustomLimiterConfig(t *testing.T) {
	client, err := NewClient(nil, "token", "https://example.com/api", "agent", &RateLimitConfig{RequestsPerMinute: 120, Burst: 5}, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if got := client.BaseURL.String(); got != "https://example.com/api/" {
		t.Fatalf("expected base URL to gain trailing slash, got %q", got)
	}
	if got := client.limiter.Limit(); got != rate.Limit(2) {
		t.Errorf("expected limit of 2 req/sec, got %v", got)
	}
	if got := client.limiter.Burst(); got != 5 {
		t.Errorf("expected burst of 5, got %d", got)
	}
}

func TestNewClient_NegativeRateLimit(t *testing.T) {
	_, err := NewClient(nil, "token", "https://example.com", "agent", &RateLimitConfig{RequestsPerMinute: -1}, nil)
	var cfgErr *pkgerrs.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestNewClient_DoesNotMutateCallerHTTPClient(t *testing.T) {
	shared := &http.Client{Timeout: 5 * time.Second}
	if _, err := NewClient(shared, "token", "https://example.com", "agent", nil, nil); err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if shared.Transport != nil {
		t.Fatalf("caller transport was replaced: %T", shared.Transport)
	}
}

func TestClient_NewRequestSetsHeaders(t *testing.T) {
	c, err := NewClient(&http.Client{}, "token-value", "https://example.com", "my-agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, "resource", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	if got := req.Header.Get("User-Agent"); got != "my-agent" {
		t.Errorf("expected User-Agent 'my-agent', got %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "" {
		t.Errorf("expected no Content-Type without a body, got %q", got)
	}
	if req.Body != nil && req.Body != http.NoBody {
		t.Errorf("expected no body for a parameterless GET")
	}
	if req.URL.String() != "https://example.com/resource" {
		t.Errorf("unexpected request URL: %s", req.URL)
	}
}

func TestClient_NewRequestInvalidPath(t *testing.T) {
	c, err := NewClient(nil, "token", "https://example.com", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.NewRequest(context.Background(), http.MethodGet, "%zz", nil)
	if err == nil {
		t.Fatal("expected error constructing request with invalid path")
	}

	var clientErr *pkgerrs.ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected ClientError, got %T", err)
	}
}

func TestClient_NewRequestGETUsesQuery(t *testing.T) {
	c, err := NewClient(nil, "token", "https://example.com", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	params := NewParams().Set("thread_id", 3).Opt("page", 0).Opt("order", "natural")
	req, err := c.NewRequest(context.Background(), http.MethodGet, "posts", params)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	if got := req.URL.RawQuery; got != "order=natural&thread_id=3" {
		t.Errorf("unexpected query %q", got)
	}
	if req.Body != nil && req.Body != http.NoBody {
		t.Errorf("GET request should not carry a body")
	}
}

func TestClient_NewRequestPOSTUsesForm(t *testing.T) {
	c, err := NewClient(nil, "token", "https://example.com", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	params := NewParams().Set("forum_id", 5).Set("thread_title", "Hi").Set("post_body", "Hello")
	req, err := c.NewRequest(context.Background(), http.MethodPost, "threads", params)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	defer req.Body.Close()

	if got := req.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected Content-Type %q", got)
	}
	if req.URL.RawQuery != "" {
		t.Errorf("POST request should not carry a query, got %q", req.URL.RawQuery)
	}

	got, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("failed reading request body: %v", err)
	}
	if string(got) != "forum_id=5&post_body=Hello&thread_title=Hi" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestClient_NewRequestMultipart(t *testing.T) {
	c, err := NewClient(nil, "token", "https://example.com", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	params := NewParams().
		Set("forum_id", 9).
		Opt("attachment_hash", "").
		File("file", types.File{Name: "cat.png", Reader: strings.NewReader("PNGDATA")})
	req, err := c.NewRequest(context.Background(), http.MethodPost, "threads/attachments", params)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	mediaType, mparams, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("expected multipart content type, got %q (%v)", req.Header.Get("Content-Type"), err)
	}

	reader := multipart.NewReader(req.Body, mparams["boundary"])
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to parse multipart body: %v", err)
	}

	if got := form.Value["forum_id"]; len(got) != 1 || got[0] != "9" {
		t.Errorf("unexpected forum_id field: %v", got)
	}
	if _, ok := form.Value["attachment_hash"]; ok {
		t.Errorf("empty optional field should be omitted")
	}
	files := form.File["file"]
	if len(files) != 1 || files[0].Filename != "cat.png" {
		t.Fatalf("unexpected file parts: %v", files)
	}
	f, err := files[0].Open()
	if err != nil {
		t.Fatalf("open file part: %v", err)
	}
	defer f.Close()
	data, _ := io.ReadAll(f)
	if string(data) != "PNGDATA" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestClient_NewRequestRejectsFilesOnGET(t *testing.T) {
	c, err := NewClient(nil, "token", "https://example.com", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	params := NewParams().File("file", types.File{Reader: strings.NewReader("x")})
	if _, err := c.NewRequest(context.Background(), http.MethodGet, "x", params); err == nil {
		t.Fatal("expected error for file upload on GET")
	}
}

func TestClient_NewRequestFileWithoutReader(t *testing.T) {
	c, err := NewClient(nil, "token", "https://example.com", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	params := NewParams().File("avatar", types.File{Name: "me.png"})
	_, err = c.NewRequest(context.Background(), http.MethodPost, "users/1/avatar", params)
	var clientErr *pkgerrs.ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected ClientError, got %v", err)
	}
}

func TestClient_DoSendsBearerAndDecodesResponse(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"thread":{"thread_id":42}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL+"/", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, "threads/42", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	if req.Header.Get("Authorization") != "" {
		t.Fatalf("the caller's request should not be modified by the session")
	}

	var out types.Response
	if _, err := c.Do(req, &out); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}

	if gotAuth != "Bearer token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	thread, ok := out["thread"].(map[string]any)
	if !ok {
		t.Fatalf("expected thread object, got %T", out["thread"])
	}
	if thread["thread_id"] != json.Number("42") {
		t.Errorf("unexpected thread_id %v", thread["thread_id"])
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestClient_DoTransportErrorWrapped(t *testing.T) {
	expectedErr := errors.New("boom")
	httpClient := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, expectedErr
	})}

	c, err := NewClient(httpClient, "token", "https://example.com/", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(WithOperation(context.Background(), "threads.get"), http.MethodGet, "resource", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	_, err = c.Do(req, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}

	var reqErr *pkgerrs.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if !errors.Is(reqErr, expectedErr) {
		t.Fatalf("expected wrapped error %v, got %v", expectedErr, reqErr)
	}
	if reqErr.Operation != "threads.get" || reqErr.Method != http.MethodGet {
		t.Errorf("unexpected request error context: %+v", reqErr)
	}
}

func TestClient_DoNonSuccessStatusReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"errors":["temporary"]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL+"/", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, "fail", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	var out types.Response
	resp, err := c.Do(req, &out)
	if err == nil {
		t.Fatal("expected API error")
	}
	if resp == nil {
		t.Fatal("expected response to be returned alongside error")
	}
	if out != nil {
		t.Fatalf("error bodies must not be decoded into the result")
	}

	var apiErr *pkgerrs.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status on APIError: %d", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"errors":["temporary"]}` {
		t.Fatalf("expected body to be preserved, got %q", apiErr.Body)
	}
}

func TestClient_DoJSONDecodeErrorWrapped(t *testing.T) {
	for name, body := range map[string]string{
		"truncated": `{"bad json"`,
		"html":      `<html>maintenance</html>`,
		"empty":     ``,
		"trailing":  `{"a":1} {"b":2}`,
		"array":     `[1,2,3]`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.Client(), "token", server.URL+"/", "agent", nil, nil)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}

			req, err := c.NewRequest(context.Background(), http.MethodGet, "bad-json", nil)
			if err != nil {
				t.Fatalf("NewRequest returned error: %v", err)
			}

			var out types.Response
			_, err = c.Do(req, &out)

			var parseErr *pkgerrs.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected ParseError, got %T (%v)", err, err)
			}
			if string(parseErr.Body) != body {
				t.Errorf("expected raw body to be preserved, got %q", parseErr.Body)
			}
		})
	}
}

func TestClient_DoSkipsDecodeWhenTargetNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"not":"json"`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL+"/", "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, "skip", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	resp, err := c.Do(req, nil)
	if err != nil {
		t.Fatalf("expected no error when decode target nil, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestClient_DoRawReturnsBytes(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL, "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, "posts/1/attachments/2", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	resp, body, err := c.DoRaw(req)
	if err != nil {
		t.Fatalf("DoRaw returned error: %v", err)
	}
	if !bytes.Equal(body, payload) {
		t.Errorf("unexpected body %v", body)
	}
	if resp.Header.Get("Content-Type") != "image/png" {
		t.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
}

func TestClient_DoRecordsMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL, "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	counter := requestsTotal.WithLabelValues("metrics.probe", http.MethodGet, "404")
	before := testutil.ToFloat64(counter)

	req, err := c.NewRequest(WithOperation(context.Background(), "metrics.probe"), http.MethodGet, "missing", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	_, _ = c.Do(req, nil)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("expected one 404 observation, got %v", got)
	}
}

func TestClient_DoLogsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c, err := NewClient(server.Client(), "secret-token", server.URL, "agent", nil, &logger)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, err := c.NewRequest(WithOperation(context.Background(), "users.list"), http.MethodGet, "users", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	if _, err := c.Do(req, nil); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"operation":"users.list"`) || !strings.Contains(out, `"status":200`) {
		t.Errorf("expected structured request log, got %s", out)
	}
	if strings.Contains(out, "secret-token") {
		t.Errorf("token leaked into logs: %s", out)
	}
}

func TestClient_DoEnforcesRetryAfter(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
		firstHit  time.Time
		secondHit time.Time
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		callCount++
		if callCount == 1 {
			firstHit = time.Now()
			w.Header().Set("Retry-After", "0.1")
			w.Header().Set("X-Ratelimit-Remaining", "0")
			w.Header().Set("X-Ratelimit-Reset", "0.1")
		} else {
			secondHit = time.Now()
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL+"/", "agent", &RateLimitConfig{RequestsPerMinute: 60000, Burst: 1000}, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx := context.Background()
	req1, err := c.NewRequest(ctx, http.MethodGet, "first", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	if _, err := c.Do(req1, nil); err != nil {
		t.Fatalf("Do on first request returned error: %v", err)
	}

	req2, err := c.NewRequest(ctx, http.MethodGet, "second", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	start := time.Now()
	if _, err := c.Do(req2, nil); err != nil {
		t.Fatalf("Do on second request returned error: %v", err)
	}
	elapsed := time.Since(start)

	mu.Lock()
	s, f, n := secondHit, firstHit, callCount
	mu.Unlock()

	if n != 2 {
		t.Fatalf("expected 2 calls to server, got %d", n)
	}
	if diff := s.Sub(f); diff < 90*time.Millisecond {
		t.Fatalf("expected at least 90ms between requests, got %v", diff)
	}
	if elapsed < 90*time.Millisecond {
		t.Fatalf("expected Do call to take at least 90ms due to rate limit, took %v", elapsed)
	}
}

func TestClient_DoIgnoresRetryAfterWithoutLimiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.Client(), "token", server.URL, "agent", nil, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req, _ := c.NewRequest(context.Background(), http.MethodGet, "x", nil)
	_, err = c.Do(req, nil)
	if !pkgerrs.IsStatus(err, http.StatusTooManyRequests) {
		t.Fatalf("expected 429 APIError, got %v", err)
	}

	c.mu.Lock()
	deferred := !c.forceWaitUntil.IsZero()
	c.mu.Unlock()
	if deferred {
		t.Fatal("unthrottled client should not defer later requests")
	}
}

func TestClient_DoHonorsCanceledContextBeforeSend(t *testing.T) {
	transportCalled := false
	httpClient := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		transportCalled = true
		return nil, errors.New("unexpected transport call")
	})}

	c, err := NewClient(httpClient, "token", "https://example.com/", "agent", &RateLimitConfig{RequestsPerMinute: 60000, Burst: 1000}, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, err := c.NewRequest(ctx, http.MethodGet, "resource", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	_, err = c.Do(req, nil)
	if err == nil {
		t.Fatal("expected error due to canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if transportCalled {
		t.Fatal("transport should not be invoked when context already canceled")
	}
}

func TestClient_WaitForForcedDelayBlocksAndClears(t *testing.T) {
	c := &Client{}
	c.forceWaitUntil = time.Now().Add(30 * time.Millisecond)

	start := time.Now()
	if err := c.waitForForcedDelay(context.Background()); err != nil {
		t.Fatalf("waitForForcedDelay returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("expected waitForForcedDelay to block, elapsed %v", elapsed)
	}

	if !c.forceWaitUntil.IsZero() {
		t.Fatal("expected forced delay to be cleared after waiting")
	}
}

func TestClient_WaitForForcedDelayContextCanceled(t *testing.T) {
	c := &Client{}
	c.forceWaitUntil = time.Now().Add(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.waitForForcedDelay(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if c.forceWaitUntil.IsZero() {
		t.Fatalf("forced delay should remain until cleared on successful wait")
	}
}

func TestClient_DeferRequestsExtendsDelay(t *testing.T) {
	c := &Client{}

	c.deferRequests(-time.Second)
	if !c.forceWaitUntil.IsZero() {
		t.Fatal("negative duration should not set forced delay")
	}

	c.deferRequests(20 * time.Millisecond)
	first := c.forceWaitUntil
	if first.IsZero() {
		t.Fatal("expected forced delay to be set")
	}

	c.deferRequests(5 * time.Millisecond)
	if !c.forceWaitUntil.Equal(first) {
		t.Fatalf("shorter defer should not reduce wait: first=%v second=%v", first, c.forceWaitUntil)
	}

	c.deferRequests(40 * time.Millisecond)
	if !c.forceWaitUntil.After(first) {
		t.Fatalf("longer defer should extend wait: first=%v third=%v", first, c.forceWaitUntil)
	}
}

func TestClient_ApplyRateHeadersUsesRatelimitRemaining(t *testing.T) {
	c := &Client{limiter: buildLimiter(RateLimitConfig{})}
	resp := &http.Response{Header: make(http.Header)}
	resp.Header.Set("X-Ratelimit-Remaining", "1")
	resp.Header.Set("X-Ratelimit-Reset", "0.05")

	c.applyRateHeaders(resp)
	if c.forceWaitUntil.IsZero() {
		t.Fatal("expected ratelimit headers to schedule delay")
	}
}

func TestClient_ApplyRateHeadersRejectsBadValues(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		wantDelay bool
	}{
		{"nan reset", map[string]string{"X-Ratelimit-Remaining": "0", "X-Ratelimit-Reset": "NaN"}, false},
		{"inf remaining", map[string]string{"X-Ratelimit-Remaining": "-Inf", "X-Ratelimit-Reset": "1"}, false},
		{"garbage retry-after", map[string]string{"Retry-After": "Wed, 21 Oct 2015 07:28:00 GMT"}, false},
		{"negative retry-after", map[string]string{"Retry-After": "-5"}, false},
		{"plenty remaining", map[string]string{"X-Ratelimit-Remaining": "50", "X-Ratelimit-Reset": "60"}, false},
		{"huge reset", map[string]string{"X-Ratelimit-Remaining": "0", "X-Ratelimit-Reset": "999999999"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{limiter: buildLimiter(RateLimitConfig{})}
			resp := &http.Response{Header: make(http.Header)}
			for k, v := range tt.headers {
				resp.Header.Set(k, v)
			}

			before := time.Now()
			c.applyRateHeaders(resp)

			if !tt.wantDelay {
				if !c.forceWaitUntil.IsZero() {
					t.Fatalf("expected no delay, got wait until %v", c.forceWaitUntil)
				}
				return
			}
			if c.forceWaitUntil.IsZero() {
				t.Fatal("expected a delay")
			}
			if c.forceWaitUntil.Sub(before) > MaxServerDelay+time.Second {
				t.Fatalf("delay %v exceeds cap %v", c.forceWaitUntil.Sub(before), MaxServerDelay)
			}
		})
	}
}

func TestOperationFrom(t *testing.T) {
	if got := OperationFrom(context.Background()); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
	if got := OperationFrom(WithOperation(context.Background(), "tags.find")); got != "tags.find" {
		t.Errorf("expected tags.find, got %q", got)
	}
}
