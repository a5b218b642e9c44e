package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/robot-service/internal/domain"
	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/platform/logging"
)

// maxRobotBodyBytes caps a robot request body at 1 MB.
const maxRobotBodyBytes = 1 << 20

// robotIDParam reads the {id} path segment of /api/robots/{id}.
func robotIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, dto.In(dto.LocationPath, &domain.ValidationError{
			Fields: map[string]string{"id": "must be a valid integer"},
		})
	}
	return id, nil
}

// sortParam reads the repeated sort query parameter.
func sortParam(r *http.Request) (robot.Sort, error) {
	s, err := robot.ParseSort(r.URL.Query()["sort"])
	return s, dto.In(dto.LocationQuery, err)
}

// decodeRobotRequest reads a robot JSON body. On failure it writes the 400
// problem response and reports false.
func decodeRobotRequest(w http.ResponseWriter, r *http.Request) (dto.RobotRequest, bool) {
	var req dto.RobotRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRobotBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"
		}
		dto.WriteErrorResponse(w, r, dto.In(dto.LocationBody, &domain.ValidationError{
			Fields: map[string]string{dto.LocationBody: msg},
		}))
		return req, false
	}
	return req, true
}

// writeJSON writes v as a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.String("instance", r.RequestURI),
			logging.Err(err),
		)
	}
}
