package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/robot-service/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying request_id and
// correlation_id in the context, then logs the request start and its
// completion. Completion is logged at warn for 4xx and error for 5xx, and
// carries the chi route and any robot alert headers the handler set.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), reqLogger)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rec := recordResponse(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.Status()),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			attrs = append(attrs, alertAttrs(rec.Header())...)

			reqLogger.LogAttrs(ctx, completionLevel(rec.Status()), "request completed", attrs...)
		})
	}
}

// alertAttrs reports the robot alert headers of a response: the success
// alert key, or the failure key and entity.
func alertAttrs(h http.Header) []slog.Attr {
	var attrs []slog.Attr
	if v := h.Get(dto.HeaderAlert); v != "" {
		attrs = append(attrs, slog.String("alert", v))
	}
	if v := h.Get(dto.HeaderError); v != "" {
		attrs = append(attrs, slog.String("alert_error", v))
	}
	if v := h.Get(dto.HeaderParams); v != "" {
		attrs = append(attrs, slog.String("alert_params", v))
	}
	return attrs
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
