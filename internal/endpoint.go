package internal

import (
	"fmt"
	"net/url"
	"strings"

	pkgerrs "github.com/jamesprial/go-lolz-api-wrapper/pkg/errors"
)

// Endpoint describes one remote operation: its verb and a path template
// relative to the API base URL. Placeholders are written as {name}.
type Endpoint struct {
	// Name identifies the operation in logs and metrics, e.g. "threads.get".
	Name   string
	Method string
	Path   string
}

// Placeholders returns the placeholder names of the path template in order.
func (e Endpoint) Placeholders() []string {
	var names []string
	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// Resolve substitutes args into the path template, in order. Every argument
// must be a positive integer or a non-empty string without slashes.
func (e Endpoint) Resolve(args ...any) (string, error) {
	names := e.Placeholders()
	if len(names) != len(args) {
		return "", &pkgerrs.ClientError{
			Operation: e.Name,
			Message:   fmt.Sprintf("path %q expects %d arguments, got %d", e.Path, len(names), len(args)),
		}
	}

	path := e.Path
	for i, name := range names {
		if err := defaultValidator.ValidatePathParam(name, args[i]); err != nil {
			return "", err
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(fmt.Sprint(args[i])), 1)
	}
	return path, nil
}
