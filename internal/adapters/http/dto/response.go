// Package dto provides HTTP request/response data transfer objects, alert
// headers and RFC 9457 Problem Details error responses for the inbound HTTP
// adapter layer.
package dto

import "github.com/jsamuelsen11/robot-service/internal/ports"

// RobotResponse represents a single robot in HTTP responses.
type RobotResponse struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// ToRobotResponse converts a service transfer object to an HTTP response DTO.
func ToRobotResponse(d *ports.RobotDTO) RobotResponse {
	return RobotResponse{ID: d.ID, Name: d.Name}
}

// ToRobotListResponse converts service transfer objects to the JSON array
// returned by the list endpoint. Never nil, so an empty list encodes as [].
func ToRobotListResponse(robots []ports.RobotDTO) []RobotResponse {
	items := make([]RobotResponse, len(robots))
	for i := range robots {
		items[i] = ToRobotResponse(&robots[i])
	}
	return items
}
