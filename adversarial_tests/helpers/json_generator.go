package helpers

import (
	"fmt"
	"strings"
)

// JSONGenerator produces response bodies shaped like Lolz API answers, both
// well formed and hostile.
type JSONGenerator struct{}

// NewJSONGenerator creates a new JSONGenerator
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

// GenerateThreadList returns a threads.list answer with n threads.
func (g *JSONGenerator) GenerateThreadList(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"threads":[`)
	for i := 1; i <= n; i++ {
		if i > 1 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"thread_id":%d,"forum_id":%d,"thread_title":"Thread %d","creator_username":"user%d","thread_post_count":%d}`,
			i, i%7+1, i, i%13, i*3)
	}
	fmt.Fprintf(&sb, `],"threads_total":%d,"links":{"pages":1}}`, n)
	return sb.String()
}

// GenerateDeeplyNested returns an object nested depth levels deep.
func (g *JSONGenerator) GenerateDeeplyNested(depth int) string {
	return strings.Repeat(`{"a":`, depth) + "1" + strings.Repeat("}", depth)
}

// GenerateLargeArray wraps size integers in an object.
func (g *JSONGenerator) GenerateLargeArray(size int) string {
	var sb strings.Builder
	sb.WriteString(`{"items":[`)
	for i := 0; i < size; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", i)
	}
	sb.WriteString("]}")
	return sb.String()
}

// GenerateMalformedBodies returns 2xx bodies that must be reported as parse errors.
func (g *JSONGenerator) GenerateMalformedBodies() map[string]string {
	return map[string]string{
		"empty":            "",
		"whitespace":       " \n\t ",
		"null":             "null",
		"array":            `[{"thread_id":1}]`,
		"string":           `"ok"`,
		"number":           "42",
		"truncated":        `{"thread":{"thread_id":1`,
		"trailing garbage": `{"ok":true} {"ok":false}`,
		"html":             "<html><body>502 Bad Gateway</body></html>",
		"unquoted keys":    `{thread_id:1}`,
		"single quotes":    `{'thread_id':1}`,
		"bom":              "\xef\xbb\xbf{\"ok\":true}",
		"invalid utf8 key": "{\"\xff\":1",
	}
}

// GenerateOddButValidBodies returns bodies that decode into a JSON object.
func (g *JSONGenerator) GenerateOddButValidBodies() map[string]string {
	return map[string]string{
		"empty object":     "{}",
		"huge number":      `{"id":123456789012345678901234567890}`,
		"negative zero":    `{"n":-0}`,
		"exponent":         `{"n":1e308}`,
		"escaped unicode":  `{"title":"\u043f\u0440\u0438\u0432\u0435\u0442"}`,
		"duplicate keys":   `{"a":1,"a":2}`,
		"null values":      `{"thread":null,"links":null}`,
		"leading spaces":   "   {\"ok\":true}\n",
		"escaped slash":    `{"url":"https:\/\/lolz.guru\/threads\/1\/"}`,
		"nested empty":     `{"a":{"b":{"c":[]}}}`,
		"invalid utf8 val": "{\"s\":\"\xff\"}",
	}
}
