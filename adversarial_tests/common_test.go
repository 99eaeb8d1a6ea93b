package adversarial_tests

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	lolz "github.com/jamesprial/go-lolz-api-wrapper"
)

const testToken = "adversarial-secret-token"

// recordingServer answers every request with body and remembers what it saw.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func newRecordingServer(t *testing.T, status int, body string, headers map[string]string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		rs.mu.Lock()
		rs.requests = append(rs.requests, r.Clone(r.Context()))
		rs.mu.Unlock()

		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) count() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.requests)
}

func (rs *recordingServer) last() *http.Request {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if len(rs.requests) == 0 {
		return nil
	}
	return rs.requests[len(rs.requests)-1]
}

func newServerClient(t *testing.T, rs *recordingServer, rateLimit *lolz.RateLimitConfig) *lolz.Client {
	t.Helper()
	client, err := lolz.NewClient(&lolz.Config{
		Token:      testToken,
		BaseURL:    rs.URL + "/",
		UserAgent:  "adversarial/1.0",
		HTTPClient: rs.Client(),
		RateLimit:  rateLimit,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func newTransportClient(t *testing.T, transport http.RoundTripper) *lolz.Client {
	t.Helper()
	client, err := lolz.NewClient(&lolz.Config{
		Token:      testToken,
		BaseURL:    "https://api.invalid/",
		UserAgent:  "adversarial/1.0",
		HTTPClient: &http.Client{Transport: transport},
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}
