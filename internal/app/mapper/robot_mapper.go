// Package mapper converts robots between the persisted entity shape and the
// transfer shape used at the service boundary.
package mapper

import (
	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// Compile-time check that RobotMapper implements ports.RobotMapper.
var _ ports.RobotMapper = RobotMapper{}

// RobotMapper is stateless; the zero value is ready to use.
type RobotMapper struct{}

// New returns a RobotMapper.
func New() RobotMapper {
	return RobotMapper{}
}

// ToDTO copies the entity's ID and name into a new DTO. Nil maps to nil.
func (RobotMapper) ToDTO(entity *robot.Robot) *ports.RobotDTO {
	if entity == nil {
		return nil
	}
	return &ports.RobotDTO{
		ID:   copyID(entity.ID),
		Name: entity.Name,
	}
}

// ToEntity copies the DTO's ID and name into a new entity. Nil maps to nil.
func (RobotMapper) ToEntity(dto *ports.RobotDTO) *robot.Robot {
	if dto == nil {
		return nil
	}
	return &robot.Robot{
		ID:   copyID(dto.ID),
		Name: dto.Name,
	}
}

// ToDTOs maps each entity in order. The result is never nil.
func (m RobotMapper) ToDTOs(entities []robot.Robot) []ports.RobotDTO {
	dtos := make([]ports.RobotDTO, len(entities))
	for i := range entities {
		dtos[i] = *m.ToDTO(&entities[i])
	}
	return dtos
}

// ToEntities maps each DTO in order. The result is never nil.
func (m RobotMapper) ToEntities(dtos []ports.RobotDTO) []robot.Robot {
	entities := make([]robot.Robot, len(dtos))
	for i := range dtos {
		entities[i] = *m.ToEntity(&dtos[i])
	}
	return entities
}

// EntityRefFromID builds a detached robot carrying only the given ID, for use
// as a reference without loading the row. Nil maps to nil.
func (RobotMapper) EntityRefFromID(id *int64) *robot.Robot {
	if id == nil {
		return nil
	}
	return &robot.Robot{ID: copyID(id)}
}

// copyID returns a fresh pointer so entity and DTO never share an ID.
func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
