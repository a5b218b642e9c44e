package middleware

import (
	"context"
	"net/http"
	"unicode"

	"github.com/google/uuid"
)

// Identity headers read from robot API requests and echoed on responses.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLen bounds a client-supplied id before it reaches logs and spans.
const maxIDLen = 128

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, requestIDKey)
}

// WithCorrelationID returns a copy of ctx carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, correlationIDKey)
}

// RequestID reuses a well-formed incoming X-Request-ID and otherwise assigns
// a UUID v4.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses a well-formed incoming X-Correlation-ID and otherwise
// falls back to the request ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func propagateID(header string, with func(context.Context, string) context.Context, fallback func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !wellFormedID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(with(r.Context(), id)))
		})
	}
}

func idFromContext(ctx context.Context, key idKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// wellFormedID accepts non-empty printable ASCII up to maxIDLen.
func wellFormedID(id string) bool {
	if id == "" || len(id) > maxIDLen {
		return false
	}
	for _, c := range id {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) {
			return false
		}
	}
	return true
}
