package test_helpers

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MockServer provides a configurable mock Lolz API server that records every
// request it receives.
type MockServer struct {
	server  *httptest.Server
	handler *MockHandler
	baseURL string
}

// RequestEntry is one recorded request, with its parameters already decoded.
type RequestEntry struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	// Body is the raw request body.
	Body string
	// Form holds the urlencoded or multipart form fields.
	Form url.Values
	// Files holds multipart file parts by field name.
	Files        map[string]UploadedFile
	Timestamp    time.Time
	ResponseCode int
}

// UploadedFile is a multipart file part.
type UploadedFile struct {
	Filename string
	Content  []byte
}

// MockHandler handles mock API responses
type MockHandler struct {
	responses   map[string]*MockResponse
	defaultResp *MockResponse
	delay       time.Duration

	mutex      sync.RWMutex
	requestLog []RequestEntry
	callCount  map[string]int
}

// MockResponse defines a mock API response
type MockResponse struct {
	Status  int
	Body    string
	Headers map[string]string
	Delay   time.Duration
}

// NewMockServer creates a new mock server instance
func NewMockServer() *MockServer {
	handler := &MockHandler{
		responses: make(map[string]*MockResponse),
		callCount: make(map[string]int),
		defaultResp: &MockResponse{
			Status:  http.StatusOK,
			Body:    `{"status":"ok"}`,
			Headers: map[string]string{"Content-Type": "application/json"},
		},
	}

	server := httptest.NewServer(handler)

	return &MockServer{
		server:  server,
		handler: handler,
		baseURL: server.URL + "/",
	}
}

// URL returns the base URL of the mock server, with a trailing slash.
func (ms *MockServer) URL() string {
	return ms.baseURL
}

// Client returns an HTTP client configured for the mock server.
func (ms *MockServer) Client() *http.Client {
	return ms.server.Client()
}

// Close shuts down the mock server
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse configures a response for a path such as "/threads/42". A key
// of the form "POST /threads" only matches that method.
func (ms *MockServer) SetResponse(key string, response *MockResponse) {
	ms.handler.mutex.Lock()
	defer ms.handler.mutex.Unlock()
	ms.handler.responses[key] = response
}

// SetDefaultResponse configures the default response
func (ms *MockServer) SetDefaultResponse(response *MockResponse) {
	ms.handler.mutex.Lock()
	defer ms.handler.mutex.Unlock()
	ms.handler.defaultResp = response
}

// SetDelay adds delay to all responses
func (ms *MockServer) SetDelay(delay time.Duration) {
	ms.handler.mutex.Lock()
	defer ms.handler.mutex.Unlock()
	ms.handler.delay = delay
}

// SetupRateLimit makes every response ask the client to slow down.
func (ms *MockServer) SetupRateLimit(retryAfter time.Duration) {
	ms.SetDefaultResponse(&MockResponse{
		Status: http.StatusOK,
		Body:   `{"status":"ok"}`,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"Retry-After":  strconv.FormatFloat(retryAfter.Seconds(), 'f', -1, 64),
		},
	})
}

// SetupError makes every response fail with statusCode.
func (ms *MockServer) SetupError(statusCode int, message string) {
	ms.SetDefaultResponse(&MockResponse{
		Status:  statusCode,
		Body:    fmt.Sprintf(`{"errors":[%q]}`, message),
		Headers: map[string]string{"Content-Type": "application/json"},
	})
}

// GetRequestLog returns the request log
func (ms *MockServer) GetRequestLog() []RequestEntry {
	ms.handler.mutex.RLock()
	defer ms.handler.mutex.RUnlock()
	return append([]RequestEntry{}, ms.handler.requestLog...)
}

// GetCallCount returns the call count for a path
func (ms *MockServer) GetCallCount(path string) int {
	ms.handler.mutex.RLock()
	defer ms.handler.mutex.RUnlock()
	return ms.handler.callCount[path]
}

// ClearLog clears the request log
func (ms *MockServer) ClearLog() {
	ms.handler.mutex.Lock()
	defer ms.handler.mutex.Unlock()
	ms.handler.requestLog = ms.handler.requestLog[:0]
	ms.handler.callCount = make(map[string]int)
}

// WaitForRequests waits for a specific number of requests to be made
func (ms *MockServer) WaitForRequests(count int, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for %d requests", count)
		case <-ticker.C:
			if len(ms.GetRequestLog()) >= count {
				return nil
			}
		}
	}
}

// AssertRequestCount asserts that a specific number of requests were made to a path
func (ms *MockServer) AssertRequestCount(path string, expectedCount int) error {
	actualCount := ms.GetCallCount(path)
	if actualCount != expectedCount {
		return fmt.Errorf("expected %d requests to %s, got %d", expectedCount, path, actualCount)
	}
	return nil
}

// GetLastRequest returns the last request made to a specific path
func (ms *MockServer) GetLastRequest(path string) (*RequestEntry, error) {
	ms.handler.mutex.RLock()
	defer ms.handler.mutex.RUnlock()

	for i := len(ms.handler.requestLog) - 1; i >= 0; i-- {
		if ms.handler.requestLog[i].Path == path {
			entry := ms.handler.requestLog[i]
			return &entry, nil
		}
	}

	return nil, fmt.Errorf("no requests found for path: %s", path)
}

// LastRequest returns the most recent request, whatever its path.
func (ms *MockServer) LastRequest() (*RequestEntry, error) {
	ms.handler.mutex.RLock()
	defer ms.handler.mutex.RUnlock()

	if len(ms.handler.requestLog) == 0 {
		return nil, fmt.Errorf("no requests recorded")
	}
	entry := ms.handler.requestLog[len(ms.handler.requestLog)-1]
	return &entry, nil
}

// ServeHTTP implements http.Handler
func (h *MockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry := recordRequest(r)

	h.mutex.RLock()
	response, exists := h.responses[r.Method+" "+r.URL.Path]
	if !exists {
		response, exists = h.responses[r.URL.Path]
	}
	if !exists {
		response = h.defaultResp
	}
	delay := h.delay + response.Delay
	h.mutex.RUnlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(response.Status)
	_, _ = w.Write([]byte(response.Body))
	entry.ResponseCode = response.Status

	h.mutex.Lock()
	h.requestLog = append(h.requestLog, entry)
	h.callCount[r.URL.Path]++
	h.mutex.Unlock()
}

func recordRequest(r *http.Request) RequestEntry {
	entry := RequestEntry{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.Query(),
		Headers:   r.Header.Clone(),
		Form:      url.Values{},
		Files:     map[string]UploadedFile{},
		Timestamp: time.Now(),
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return entry
	}
	entry.Body = string(body)

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return entry
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if form, err := url.ParseQuery(entry.Body); err == nil {
			entry.Form = form
		}
	case "multipart/form-data":
		parseMultipart(&entry, body, params["boundary"])
	}
	return entry
}

func parseMultipart(entry *RequestEntry, body []byte, boundary string) {
	req := &http.Request{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": {"multipart/form-data; boundary=" + boundary}},
		Body:   io.NopCloser(strings.NewReader(string(body))),
	}
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		return
	}
	for k, v := range req.MultipartForm.Value {
		entry.Form[k] = v
	}
	for field, headers := range req.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			continue
		}
		content, _ := io.ReadAll(f)
		f.Close()
		entry.Files[field] = UploadedFile{Filename: headers[0].Filename, Content: content}
	}
}
