// Package lolz provides a Go wrapper for the Lolz forum REST API.
//
// # Overview
//
// Every exported method of Client maps to exactly one API endpoint. A call
// issues one HTTP request with the session's bearer token, waits for the
// response and returns the decoded JSON body as a types.Response. There is no
// caching, retrying or pagination engine; callers page by passing Page and
// Limit themselves.
//
// # Quick Start
//
// Only an access token is required:
//
//	client, err := lolz.New("your-access-token")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	thread, err := client.GetThread(ctx, 42)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// For more control build a Config:
//
//	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	client, err := lolz.NewClient(&lolz.Config{
//		Token:     os.Getenv("LOLZ_TOKEN"),
//		UserAgent: "myapp/1.0",
//		RateLimit: &lolz.RateLimitConfig{RequestsPerMinute: 20},
//		Logger:    &logger,
//	})
//
// or read it from the environment with ConfigFromEnv (LOLZ_TOKEN,
// LOLZ_BASE_URL, LOLZ_USER_AGENT, LOLZ_TIMEOUT, LOLZ_REQUESTS_PER_MINUTE,
// LOLZ_RATE_BURST, LOLZ_DEBUG).
//
// # Optional Parameters
//
// Endpoints with optional parameters take a pointer to a request struct from
// pkg/types; nil means "none". Zero values mean "not provided" and are left
// out of the request, so page 0, false and "" are never sent:
//
//	threads, err := client.GetThreads(ctx, &types.ThreadsRequest{
//		ForumID: 876,
//		Page:    2,
//		Order:   "thread_update_date_reverse",
//	})
//
// Required parameters are always sent. GET requests carry parameters in the
// query string; every other verb sends them as a form body.
//
// # Responses
//
// A types.Response is the JSON object returned by the server, untouched.
// Numbers are decoded as json.Number. Use Response.Decode to map the fields
// you care about onto your own struct:
//
//	var out struct {
//		Thread struct {
//			ID    int64  `json:"thread_id"`
//			Title string `json:"thread_title"`
//		} `json:"thread"`
//	}
//	if err := thread.Decode(&out); err != nil {
//		log.Fatal(err)
//	}
//
// Attachment downloads (GetPostAttachment, GetMessageAttachment) return the
// file bytes as a *types.Binary instead.
//
// # Uploads
//
// Upload methods take a types.File and send multipart/form-data:
//
//	f, _ := os.Open("cat.png")
//	defer f.Close()
//	hash := lolz.NewAttachmentHash()
//	_, err := client.UploadPostAttachment(ctx, types.File{Name: "cat.png", Reader: f},
//		&types.PostAttachmentRequest{ThreadID: 42, AttachmentHash: hash})
//
// # Error Handling
//
// Errors are typed (see pkg/errors):
//
//	_, err := client.GetThread(ctx, 42)
//	var apiErr *errors.APIError
//	switch {
//	case errors.As(err, &apiErr):
//		// non-2xx status; apiErr.Body holds the server's answer
//	case errors.As(err, new(*errors.RequestError)):
//		// network failure or canceled context
//	case errors.As(err, new(*errors.ParseError)):
//		// 2xx with a body that is not a JSON object
//	case errors.As(err, new(*errors.ConfigError)):
//		// invalid configuration or identifier; nothing was sent
//	}
//
// # Rate Limiting
//
// Throttling is off by default. With Config.RateLimit set, requests are
// spaced by a token bucket and a Retry-After or exhausted X-Ratelimit-*
// header postpones later requests. The failed request itself is not retried.
//
// # Logging and Metrics
//
// Config.Logger receives one debug event per request. Config.Debug
// additionally dumps full requests and responses with the token redacted.
// Request counts and latencies are exported as Prometheus metrics
// lolz_client_requests_total and lolz_client_request_duration_seconds on the
// default registry.
//
// # Concurrency
//
// A Client may be shared between goroutines. It starts no goroutines of its
// own.
package lolz
