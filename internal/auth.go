package internal

import (
	"net/http"
)

// bearerTransport stamps the session token on every outgoing request.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// NewSession returns a copy of base whose transport authenticates every
// request with token. base itself is left untouched, so one *http.Client can
// seed sessions for several tokens.
func NewSession(base *http.Client, token string) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}

	session := *base
	rt := session.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	session.Transport = &bearerTransport{base: rt, token: token}
	return &session
}
