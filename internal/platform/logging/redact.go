package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values are
// never logged. The HTTP middleware's RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Attribute names masked wherever they appear. dsn covers the store
// connection string, which carries the PostgreSQL password.
var (
	sensitiveFields   = []string{"password", "secret", "token", "dsn"}
	sensitivePrefixes = []string{"secret_", "api_key"}
)

// Raw values masked in any attribute.
var sensitiveValues = []*regexp.Regexp{
	// Bearer credentials.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... and apikey:...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// password=... and user:pass@ in store connection strings.
	regexp.MustCompile(`(?i)(password=\S+|://[^:/@\s]+:[^@\s]+@)`),
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New builds.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
