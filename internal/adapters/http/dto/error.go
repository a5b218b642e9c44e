package dto

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/robot-service/internal/domain"
	"github.com/jsamuelsen11/robot-service/internal/platform/logging"
)

// ErrorResponse represents an RFC 9457 Problem Details response. EntityName,
// ErrorKey and Message are extension members set for alert errors.
type ErrorResponse struct {
	Type       string        `json:"type"`
	Title      string        `json:"title"`
	Status     int           `json:"status"`
	Detail     string        `json:"detail,omitempty"`
	Instance   string        `json:"instance,omitempty"`
	EntityName string        `json:"entityName,omitempty"`
	ErrorKey   string        `json:"errorKey,omitempty"`
	Message    string        `json:"message,omitempty"`
	Errors     []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Request parts a field error can be located in.
const (
	LocationBody  = "body"
	LocationPath  = "path"
	LocationQuery = "query"
)

// LocatedError attributes a validation failure to the part of the request
// it was read from. Errors without one are located in the body.
type LocatedError struct {
	In  string
	Err error
}

func (e *LocatedError) Error() string { return e.Err.Error() }

func (e *LocatedError) Unwrap() error { return e.Err }

// In attributes err to the given request part. A nil err stays nil.
func In(part string, err error) error {
	if err == nil {
		return nil
	}
	return &LocatedError{In: part, Err: err}
}

// internalErrorDetail replaces the cause of a 500 in the problem body. The
// cause itself is logged.
const internalErrorDetail = "an unexpected error occurred"

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status >= http.StatusInternalServerError {
		resp.Detail = internalErrorDetail
	}

	var alert *BadRequestAlertError
	if errors.As(err, &alert) {
		resp.EntityName = alert.EntityName
		resp.ErrorKey = alert.ErrorKey
		resp.Message = alert.ProblemMessage()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		in := LocationBody
		var located *LocatedError
		if errors.As(err, &located) {
			in = located.In
		}
		resp.Errors = validationFieldsToDetails(in, verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON. Alert
// errors also set the failure alert headers. The cause of a 500 is logged
// and kept out of the body.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "robot request failed",
			slog.String("method", r.Method),
			slog.String("instance", resp.Instance),
			logging.Err(err),
		)
	}

	if resp.ErrorKey != "" {
		SetFailureAlert(w.Header(), resp.EntityName, resp.ErrorKey)
	}
	writeProblem(w, r, resp)
}

// WriteStatusResponse writes a bare RFC 9457 response for a status produced
// by the HTTP layer itself rather than by a domain error.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			logging.Err(encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields found in the
// given request part to sorted ErrorDetail entries. A field named after the
// part itself is located at the part.
func validationFieldsToDetails(in string, fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		location := in
		if field != in {
			location = in + "." + field
		}
		details = append(details, ErrorDetail{
			Location: location,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
