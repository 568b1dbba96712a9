package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted replaces masked values in log output.
const Redacted = "[REDACTED]"

// sensitiveHeaders lists lower-cased header names whose values never reach
// the logs.
var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"proxy-authorization",
	"set-cookie",
	"x-api-key",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Segments of at least 10 characters keep version strings like 1.2.3 out.
	jwtPattern   = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInline = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// redactAttr returns the masq ReplaceAttr hook shared by every handler New
// builds. Board users carry an email address, so "email" is masked next to
// the usual credential fields.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+9)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("email"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInline),
	)
	return masq.New(opts...)
}

// IsSensitiveHeader reports whether the named header carries credentials.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// Headers returns h as a "headers" group with credential values replaced by
// Redacted. Keys are sorted so lines diff cleanly.
func Headers(h http.Header) slog.Attr {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(h.Values(name), ", ")
		if IsSensitiveHeader(name) {
			value = Redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
