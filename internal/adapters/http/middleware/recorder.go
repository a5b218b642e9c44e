package middleware

import "net/http"

// statusRecorder wraps a response so recovery, otel and logging can read the
// final status and body size. A zero status means nothing was sent yet.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func recordResponse(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// Status returns the status sent to the client, with 200 for a response that
// was written without an explicit WriteHeader or not written at all.
func (rec *statusRecorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// Sent reports whether the status line has gone to the client.
func (rec *statusRecorder) Sent() bool {
	return rec.status != 0
}

// WriteHeader records the first status only.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.Sent() {
		return
	}
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.Sent() {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Flush commits the status and pushes buffered bytes when the underlying
// writer supports it.
func (rec *statusRecorder) Flush() {
	if !rec.Sent() {
		rec.status = http.StatusOK
	}
	_ = http.NewResponseController(rec.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
