package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/dto"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the panic value with the full stack
// trace and returns an RFC 9457 500 response that carries neither. If the
// response headers have already been written, only the log entry is emitted.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
// quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := recordResponse(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(v)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.Sent() {
					dto.WriteStatusResponse(rw, r, http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
