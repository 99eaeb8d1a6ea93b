package helpers

import (
	"math/rand"
	"strings"
	"unicode"
)

// Fuzzer provides utilities for generating adversarial input strings
type Fuzzer struct {
	rnd *rand.Rand
}

// NewFuzzer creates a new Fuzzer with the given seed
func NewFuzzer(seed int64) *Fuzzer {
	return &Fuzzer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// FuzzShortLink generates user short links that must either be rejected or
// stay confined to a single path segment.
func (f *Fuzzer) FuzzShortLink() []string {
	cases := []string{
		// Boundary cases
		"",
		"a",
		strings.Repeat("a", 100),
		strings.Repeat("a", 101),

		// Dot segments
		".",
		"..",
		"...",
		"a..b",

		// Separators and reserved characters
		"admin/edit",
		"admin\\edit",
		"admin?x=1",
		"admin#frag",
		"admin%2Fedit",
		"admin%00",
		"admin;param",
		"admin&user_id=1",

		// Whitespace
		" admin",
		"admin ",
		"ad min",
	}

	cases = append(cases, f.GeneratePathTraversals()...)
	cases = append(cases, f.GenerateSQLInjections()...)
	cases = append(cases, f.GenerateUnicodeAttacks()...)
	for i := 0; i < 10; i++ {
		cases = append(cases, f.GenerateRandomString(1+f.rnd.Intn(40), true))
	}
	return cases
}

// FuzzUserAgent generates user agent strings, including header injections.
func (f *Fuzzer) FuzzUserAgent() []string {
	return []string{
		"",
		"bot/1.0",
		strings.Repeat("a", 256),
		strings.Repeat("a", 257),
		"bot/1.0\r\nX-Injected: true",
		"bot/1.0\nAuthorization: Bearer stolen",
		"bot/1.0\rX: y",
		"bot/1.0 (+https://example.com)",
		"бот/1.0",
	}
}

// FuzzToken generates access token candidates.
func (f *Fuzzer) FuzzToken() []string {
	return []string{
		"",
		"   ",
		"\t",
		"token\r\nX-Injected: true",
		"token\n",
		"valid-token",
		strings.Repeat("t", 4096),
		f.GenerateRandomString(64, false),
	}
}

// FuzzIdentifier generates integer identifiers around the valid range.
func (f *Fuzzer) FuzzIdentifier() []int {
	return []int{-1 << 31, -100, -1, 0, 1, 2, 1 << 30, int(^uint(0) >> 1)}
}

// GenerateRandomString builds a random string from letters, optionally with punctuation.
func (f *Fuzzer) GenerateRandomString(length int, includeSpecial bool) string {
	const (
		letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
		special = "!@#$%^&*()_+-=[]{}|;':\",./<>?`~"
	)

	charset := letters
	if includeSpecial {
		charset += special
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = charset[f.rnd.Intn(len(charset))]
	}
	return string(result)
}

// GenerateControlCharString generates strings with embedded control characters
func (f *Fuzzer) GenerateControlCharString() []string {
	var results []string
	for i := 0; i < 32; i++ {
		char := rune(i)
		if unicode.IsControl(char) {
			results = append(results, "test"+string(char)+"string")
		}
	}
	return append(results, "test\x7fstring")
}

// GenerateUnicodeAttacks generates strings with various Unicode attack patterns
func (f *Fuzzer) GenerateUnicodeAttacks() []string {
	return []string{
		"test\u200Bstring", // Zero-width space
		"test\uFEFFstring", // Zero-width no-break space
		"test\u202Estring", // Right-to-left override
		"a\u0301\u0302",    // Combining marks
		"g\u043e\u043egle", // Cyrillic o
		"\u043f\u043e\u043b\u044c\u0437\u043e\u0432\u0430\u0442\u0435\u043b\u044c",
		"\u7528\u6237",
		"\U0001F680rocket",
		"test\u0000string",
		"\u2215etc\u2215passwd", // Division slash
	}
}

// GenerateSQLInjections generates common SQL injection patterns
func (f *Fuzzer) GenerateSQLInjections() []string {
	return []string{
		"'; DROP TABLE xf_user--",
		"' OR '1'='1",
		"admin'--",
		"' UNION SELECT password FROM xf_user--",
		"\" OR \"1\"=\"1",
	}
}

// GeneratePathTraversals generates path traversal attack patterns
func (f *Fuzzer) GeneratePathTraversals() []string {
	return []string{
		"../../etc/passwd",
		"..\\..\\windows\\system32",
		"..%2F..%2Fetc%2Fpasswd",
		"....//....//etc/passwd",
		"..;/..;/etc/passwd",
		"/etc/passwd",
		"%2e%2e",
		"%2e%2e%2f",
	}
}
