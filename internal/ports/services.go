package ports

import (
	"context"

	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
)

// RobotDTO is the boundary-facing copy of a robot. It mirrors robot.Robot
// field for field so the storage and transport shapes can evolve separately.
type RobotDTO struct {
	ID   *int64
	Name string
}

// Equal reports whether d and other carry the same ID. Name is ignored.
// A DTO without an ID is equal only to itself, even when another ID-less DTO
// has identical contents.
func (d *RobotDTO) Equal(other *RobotDTO) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || d.ID == nil || other.ID == nil {
		return false
	}
	return *d.ID == *other.ID
}

// RobotService defines the service port for robot CRUD use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Identity-presence rules (no ID on create, ID on update) are enforced by the
// caller before Save is invoked.
type RobotService interface {
	// Save inserts the robot when ID is nil, or updates the row with that ID
	// in place, and returns the stored state with its ID populated.
	// Returns domain.ErrValidation if dto is nil.
	Save(ctx context.Context, dto *RobotDTO) (*RobotDTO, error)

	// FindAll returns every robot. A zero sort keeps the store's natural order.
	FindAll(ctx context.Context, sort robot.Sort) ([]RobotDTO, error)

	// FindOne returns the robot with the given ID. found is false, with a nil
	// error, when no such robot exists.
	FindOne(ctx context.Context, id int64) (dto *RobotDTO, found bool, err error)

	// Delete removes the robot with the given ID. Deleting a missing ID is
	// not an error.
	Delete(ctx context.Context, id int64) error
}

// RobotMapper converts between the persisted and transfer shapes.
// Implementations must be pure: no I/O, no failure, nil in gives nil out.
type RobotMapper interface {
	ToDTO(entity *robot.Robot) *RobotDTO
	ToEntity(dto *RobotDTO) *robot.Robot
	ToDTOs(entities []robot.Robot) []RobotDTO
}
