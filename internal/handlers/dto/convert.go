package dto

import "tracking-service/internal/entities"

func FromPosition(p *entities.Position) Position {
	return Position{
		OrderID:    p.OrderID,
		AgentID:    p.AgentID,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		CapturedAt: p.CapturedAt.UnixMilli(),
	}
}

func FromRoute(r *entities.RoutePath) Route {
	points := make([]RoutePoint, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, RoutePoint{Latitude: p.Latitude, Longitude: p.Longitude})
	}

	return Route{
		Points:          points,
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
	}
}

func FromNotifications(records []entities.Notification) []Notification {
	out := make([]Notification, 0, len(records))
	for _, n := range records {
		out = append(out, Notification{
			ID:          n.ID,
			Title:       n.Title,
			Body:        n.Body,
			Timestamp:   n.Timestamp,
			IsRead:      n.IsRead,
			Role:        n.Role.String(),
			Type:        n.Type,
			ReferenceID: n.ReferenceID,
		})
	}
	return out
}
