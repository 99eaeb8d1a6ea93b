package test_helpers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	lolz "github.com/jamesprial/go-lolz-api-wrapper"
)

// MockClientConfig provides configuration for mock clients
type MockClientConfig struct {
	Token     string
	UserAgent string
	Timeout   time.Duration
	RateLimit *lolz.RateLimitConfig
}

// DefaultMockClientConfig returns default configuration for mock clients
func DefaultMockClientConfig() MockClientConfig {
	return MockClientConfig{
		Token:     "mock_token",
		UserAgent: "test-client/1.0",
		Timeout:   5 * time.Second,
	}
}

// TestClient provides a wrapper around the Lolz client for testing
type TestClient struct {
	*lolz.Client
	mockServer *MockServer
	config     MockClientConfig
}

// NewTestClient creates a new test client with its own mock server
func NewTestClient(config *MockClientConfig) *TestClient {
	if config == nil {
		defaultConfig := DefaultMockClientConfig()
		config = &defaultConfig
	}
	return newTestClient(NewMockServer(), *config)
}

func newTestClient(server *MockServer, config MockClientConfig) *TestClient {
	httpClient := *server.Client()
	httpClient.Timeout = config.Timeout

	client, err := lolz.NewClient(&lolz.Config{
		Token:      config.Token,
		BaseURL:    server.URL(),
		UserAgent:  config.UserAgent,
		HTTPClient: &httpClient,
		RateLimit:  config.RateLimit,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create lolz client: %v", err))
	}

	return &TestClient{
		Client:     client,
		mockServer: server,
		config:     config,
	}
}

// MockServer returns the underlying mock server
func (tc *TestClient) MockServer() *MockServer {
	return tc.mockServer
}

// Token returns the token the client was built with.
func (tc *TestClient) Token() string {
	return tc.config.Token
}

// Close closes the mock server
func (tc *TestClient) Close() {
	tc.mockServer.Close()
}

// Reset resets the mock server state
func (tc *TestClient) Reset() {
	tc.mockServer.ClearLog()
}

// LastRequest returns the most recent request seen by the mock server.
func (tc *TestClient) LastRequest() (*RequestEntry, error) {
	return tc.mockServer.LastRequest()
}

// ConcurrentTestHelper runs several clients, each with its own token,
// against one mock server and one shared *http.Client.
type ConcurrentTestHelper struct {
	server  *MockServer
	clients []*TestClient
	mu      sync.RWMutex
}

// NewConcurrentTestHelper creates a helper for concurrent testing
func NewConcurrentTestHelper(clientCount int) *ConcurrentTestHelper {
	server := NewMockServer()
	shared := server.Client()

	helper := &ConcurrentTestHelper{
		server:  server,
		clients: make([]*TestClient, clientCount),
	}

	for i := 0; i < clientCount; i++ {
		token := fmt.Sprintf("token-%d", i)
		client, err := lolz.NewClient(&lolz.Config{
			Token:      token,
			BaseURL:    server.URL(),
			HTTPClient: shared,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to create lolz client: %v", err))
		}
		helper.clients[i] = &TestClient{
			Client:     client,
			mockServer: server,
			config:     MockClientConfig{Token: token},
		}
	}

	return helper
}

// Server returns the shared mock server.
func (cth *ConcurrentTestHelper) Server() *MockServer {
	return cth.server
}

// SharedHTTPClient returns the *http.Client every client was built from.
func (cth *ConcurrentTestHelper) SharedHTTPClient() *http.Client {
	return cth.server.Client()
}

// GetClient returns a client by index
func (cth *ConcurrentTestHelper) GetClient(index int) *TestClient {
	cth.mu.RLock()
	defer cth.mu.RUnlock()

	if index < 0 || index >= len(cth.clients) {
		return nil
	}

	return cth.clients[index]
}

// Close shuts down the shared mock server
func (cth *ConcurrentTestHelper) Close() {
	cth.server.Close()
}

// RunConcurrentTest runs a test function concurrently with every client
func (cth *ConcurrentTestHelper) RunConcurrentTest(testFunc func(*TestClient) error) []error {
	cth.mu.RLock()
	clients := make([]*TestClient, len(cth.clients))
	copy(clients, cth.clients)
	cth.mu.RUnlock()

	errs := make([]error, len(clients))
	var wg sync.WaitGroup

	for i, client := range clients {
		wg.Add(1)
		go func(index int, tc *TestClient) {
			defer wg.Done()
			errs[index] = testFunc(tc)
		}(i, client)
	}

	wg.Wait()
	return errs
}
