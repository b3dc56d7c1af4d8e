package request

import (
	"room-booking-api/internal/usecase/commands"
)

type BuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

func (r BuildingRequest) ToParams() commands.BuildingParams {
	return commands.BuildingParams{
		Name:    r.Name,
		Address: r.Address,
	}
}
