package ports

import (
	"context"

	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
)

// RobotRepository defines the entity store port for robots.
// Implemented by the persistence adapters; called by the application layer.
// Every method is a single atomic row operation and errors are returned
// as produced by the store.
type RobotRepository interface {
	// Save inserts the robot when ID is nil, assigning a new ID. With an ID
	// it updates the matching row; if no row matches, the robot is inserted
	// under a newly assigned ID instead. The returned robot always has an ID.
	Save(ctx context.Context, r *robot.Robot) (*robot.Robot, error)

	// FindAll returns all robots, ordered by sort when it is non-zero.
	FindAll(ctx context.Context, sort robot.Sort) ([]robot.Robot, error)

	// FindByID returns the robot with the given ID. found is false, with a
	// nil error, when no row matches.
	FindByID(ctx context.Context, id int64) (r *robot.Robot, found bool, err error)

	// DeleteByID removes the row with the given ID. Missing rows are a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// Count returns the number of stored robots.
	Count(ctx context.Context) (int64, error)
}

// RobotStore is a RobotRepository backed by a resource that can report its
// health and must be released on shutdown.
type RobotStore interface {
	RobotRepository
	HealthChecker
	Close() error
}
