package internal

import (
	"bytes"
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

var authorizationPrefix = []byte("Authorization:")

// debugTransport dumps every request and response at debug level. The bearer
// token is redacted from the dump but bodies are logged in full, so it should
// stay off outside development.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

// NewDebugTransport wraps base with request/response dumping. A nil base
// means http.DefaultTransport.
func NewDebugTransport(base http.RoundTripper, logger zerolog.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &debugTransport{base: base, logger: logger}
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(redactAuthorization(reqDump))).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

// redactAuthorization blanks the credential on any Authorization header line.
func redactAuthorization(dump []byte) []byte {
	lines := bytes.Split(dump, []byte("\r\n"))
	for i, line := range lines {
		if len(line) >= len(authorizationPrefix) && bytes.EqualFold(line[:len(authorizationPrefix)], authorizationPrefix) {
			lines[i] = []byte("Authorization: Bearer [REDACTED]")
		}
	}
	return bytes.Join(lines, []byte("\r\n"))
}
