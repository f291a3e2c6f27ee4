package position

import (
	"time"

	"tracking-service/internal/entities"
)

// positionResponse - ответ GET /location/{order_id}.
type positionResponse struct {
	OrderID    int64   `json:"order_id"`
	AgentID    *int64  `json:"delivery_partner_id,omitempty"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	CapturedAt int64   `json:"captured_at"`
}

func (r *positionResponse) toDomain() *entities.Position {
	return &entities.Position{
		OrderID:    r.OrderID,
		AgentID:    r.AgentID,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		CapturedAt: time.UnixMilli(r.CapturedAt).UTC(),
	}
}
