// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/robot-service/internal/domain"
	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/platform/logging"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// Compile-time check that RobotService implements ports.RobotService.
var _ ports.RobotService = (*RobotService)(nil)

// RobotService implements ports.RobotService by sequencing mapper and
// repository calls. It holds no mutable state and returns repository errors
// exactly as received.
type RobotService struct {
	repo   ports.RobotRepository
	mapper ports.RobotMapper
	logger *slog.Logger
}

// NewRobotService creates a RobotService. A nil logger is replaced with a
// discarding one.
func NewRobotService(repo ports.RobotRepository, mapper ports.RobotMapper, logger *slog.Logger) *RobotService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RobotService{
		repo:   repo,
		mapper: mapper,
		logger: logger,
	}
}

// Save persists the robot and returns the stored state with its ID populated.
func (s *RobotService) Save(ctx context.Context, dto *ports.RobotDTO) (*ports.RobotDTO, error) {
	if dto == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"robot": domain.MsgRequired}}
	}

	s.log(ctx).DebugContext(ctx, "saving robot", logging.OptionalRobotID(dto.ID))

	saved, err := s.repo.Save(ctx, s.mapper.ToEntity(dto))
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to save robot",
			logging.Operation("Save"),
			logging.OptionalRobotID(dto.ID),
			logging.Err(err),
		)
		return nil, err
	}

	return s.mapper.ToDTO(saved), nil
}

// FindAll returns every robot in the order requested, or in store order when
// sort is zero.
func (s *RobotService) FindAll(ctx context.Context, sort robot.Sort) ([]ports.RobotDTO, error) {
	s.log(ctx).DebugContext(ctx, "listing robots", slog.Int("sort_criteria", len(sort)))

	robots, err := s.repo.FindAll(ctx, sort)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list robots",
			logging.Operation("FindAll"),
			logging.Err(err),
		)
		return nil, err
	}

	return s.mapper.ToDTOs(robots), nil
}

// FindOne returns the robot with the given ID, or found=false if it does not
// exist.
func (s *RobotService) FindOne(ctx context.Context, id int64) (*ports.RobotDTO, bool, error) {
	s.log(ctx).DebugContext(ctx, "fetching robot", logging.RobotID(id))

	r, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to fetch robot",
			logging.Operation("FindOne"),
			logging.RobotID(id),
			logging.Err(err),
		)
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return s.mapper.ToDTO(r), true, nil
}

// Delete removes the robot with the given ID. Missing robots are ignored.
func (s *RobotService) Delete(ctx context.Context, id int64) error {
	s.log(ctx).DebugContext(ctx, "deleting robot", logging.RobotID(id))

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to delete robot",
			logging.Operation("Delete"),
			logging.RobotID(id),
			logging.Err(err),
		)
		return err
	}

	return nil
}

// log prefers the request-scoped logger, which carries the request and
// correlation IDs.
func (s *RobotService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
