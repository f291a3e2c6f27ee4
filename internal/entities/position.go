package entities

import (
	"fmt"
	"time"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Position - последняя известная точка агента по заказу. История не хранится.
type Position struct {
	OrderID    int64
	AgentID    *int64
	Latitude   float64
	Longitude  float64
	CapturedAt time.Time
}

type PositionUpdate struct {
	OrderID   int64
	AgentID   *int64
	Latitude  float64
	Longitude float64
	// CapturedAt нулевой, если клиент не передал время снятия точки
	CapturedAt time.Time
}

func IsValidLatitude(lat float64) bool {
	return lat >= MinLatitude && lat <= MaxLatitude
}

func IsValidLongitude(lng float64) bool {
	return lng >= MinLongitude && lng <= MaxLongitude
}

// ValidateCoordinates возвращает ErrInvalidCoordinate с указанием значения.
func ValidateCoordinates(lat, lng float64) error {
	if !IsValidLatitude(lat) {
		return fmt.Errorf("latitude %v out of range: %w", lat, ErrInvalidCoordinate)
	}
	if !IsValidLongitude(lng) {
		return fmt.Errorf("longitude %v out of range: %w", lng, ErrInvalidCoordinate)
	}
	return nil
}
