package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/robot-service/internal/platform/telemetry"
)

// Stack returns the service's inbound middleware in execution order. metrics
// may be nil when telemetry is disabled; timeout bounds every request
// including its store calls.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
