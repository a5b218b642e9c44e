// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/robot-service/internal/domain"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// RobotHandler handles HTTP requests for robot CRUD under /api/robots.
type RobotHandler struct {
	svc ports.RobotService
}

// NewRobotHandler creates a new RobotHandler with the given service port.
func NewRobotHandler(svc ports.RobotService) *RobotHandler {
	return &RobotHandler{svc: svc}
}

// CreateRobot handles POST /api/robots. The body must not carry an id.
func (h *RobotHandler) CreateRobot(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRobotRequest(w, r)
	if !ok {
		return
	}
	if req.ID != nil {
		dto.WriteErrorResponse(w, r, &dto.BadRequestAlertError{
			Message:    "A new robot cannot already have an ID",
			EntityName: dto.RobotEntityName,
			ErrorKey:   dto.ErrorKeyIDExists,
		})
		return
	}

	saved, err := h.svc.Save(r.Context(), req.ToDTO())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id := formatID(saved.ID)
	w.Header().Set("Location", "/api/robots/"+id)
	dto.SetCreationAlert(w.Header(), dto.RobotEntityName, id)
	writeJSON(w, r, http.StatusCreated, dto.ToRobotResponse(saved))
}

// UpdateRobot handles PUT /api/robots. The body must carry the id to update.
func (h *RobotHandler) UpdateRobot(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRobotRequest(w, r)
	if !ok {
		return
	}
	if req.ID == nil {
		dto.WriteErrorResponse(w, r, &dto.BadRequestAlertError{
			Message:    "Invalid id",
			EntityName: dto.RobotEntityName,
			ErrorKey:   dto.ErrorKeyIDNull,
		})
		return
	}

	saved, err := h.svc.Save(r.Context(), req.ToDTO())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.SetUpdateAlert(w.Header(), dto.RobotEntityName, formatID(req.ID))
	writeJSON(w, r, http.StatusOK, dto.ToRobotResponse(saved))
}

// ListRobots handles GET /api/robots with optional repeated
// sort=field[,asc|desc] parameters.
func (h *RobotHandler) ListRobots(w http.ResponseWriter, r *http.Request) {
	sort, err := sortParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	robots, err := h.svc.FindAll(r.Context(), sort)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRobotListResponse(robots))
}

// GetRobot handles GET /api/robots/{id}.
func (h *RobotHandler) GetRobot(w http.ResponseWriter, r *http.Request) {
	id, err := robotIDParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	found, ok, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("robot %d: %w", id, domain.ErrNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRobotResponse(found))
}

// DeleteRobot handles DELETE /api/robots/{id}. Deleting an unknown id
// still returns 200.
func (h *RobotHandler) DeleteRobot(w http.ResponseWriter, r *http.Request) {
	id, err := robotIDParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.SetDeletionAlert(w.Header(), dto.RobotEntityName, strconv.FormatInt(id, 10))
	w.WriteHeader(http.StatusOK)
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
