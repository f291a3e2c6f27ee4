package position

import (
	"strconv"
	"time"

	"tracking-service/internal/entities"
)

const (
	fieldLat        = "lat"
	fieldLng        = "lng"
	fieldAgentID    = "agent_id"
	fieldCapturedAt = "captured_at"
)

func fromHash(orderID int64, hash map[string]string) (*entities.Position, error) {
	lat, err := strconv.ParseFloat(hash[fieldLat], 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(hash[fieldLng], 64)
	if err != nil {
		return nil, err
	}
	capturedMs, err := strconv.ParseInt(hash[fieldCapturedAt], 10, 64)
	if err != nil {
		return nil, err
	}

	position := &entities.Position{
		OrderID:    orderID,
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: time.UnixMilli(capturedMs).UTC(),
	}

	if raw := hash[fieldAgentID]; raw != "" {
		agentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		position.AgentID = &agentID
	}
	return position, nil
}

func formatAgentID(agentID *int64) string {
	if agentID == nil {
		return ""
	}
	return strconv.FormatInt(*agentID, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
