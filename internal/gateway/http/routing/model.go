package routing

import (
	"fmt"

	"tracking-service/internal/entities"
)

const (
	codeOk        = "Ok"
	codeNoRoute   = "NoRoute"
	codeNoSegment = "NoSegment" // точку не удалось привязать к дорожной сети
)

// routeResponse - ответ OSRM-совместимого /route/v1 c geometries=geojson.
type routeResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Routes  []route `json:"routes"`
}

type route struct {
	Distance float64  `json:"distance"`
	Duration float64  `json:"duration"`
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// toDomain переворачивает [lng, lat] провайдера в точки lat/lng.
func toDomain(r *route) (*entities.RoutePath, error) {
	points := make([]entities.RoutePoint, 0, len(r.Geometry.Coordinates))
	for i, pair := range r.Geometry.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("coordinate %d: expected [lng, lat], got %v", i, pair)
		}

		point := entities.RoutePoint{
			Latitude:  pair[1],
			Longitude: pair[0],
		}
		if !point.IsValid() {
			return nil, fmt.Errorf("coordinate %d out of range: %v", i, pair)
		}
		points = append(points, point)
	}

	return &entities.RoutePath{
		Points:          points,
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}, nil
}
