package response

import (
	"time"

	"room-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BuildingResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBuildingView(view *queries.BuildingView) *BuildingResponse {
	var resp BuildingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBuildingViews(views []*queries.BuildingView) []*BuildingResponse {
	resps := make([]*BuildingResponse, len(views))
	for i, v := range views {
		resps[i] = FromBuildingView(v)
	}
	return resps
}
