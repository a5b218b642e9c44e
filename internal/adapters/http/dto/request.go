package dto

import "github.com/jsamuelsen11/robot-service/internal/ports"

// RobotRequest is the JSON body for creating and updating a robot.
// ID must be absent on create and present on update.
type RobotRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// ToDTO converts the request to the service transfer object.
func (r *RobotRequest) ToDTO() *ports.RobotDTO {
	return &ports.RobotDTO{ID: r.ID, Name: r.Name}
}
