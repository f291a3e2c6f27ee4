package entities

type RoutePoint struct {
	Latitude  float64
	Longitude float64
}

// RoutePath строится заново на каждый запрос и нигде не кэшируется.
type RoutePath struct {
	Points          []RoutePoint
	DistanceMeters  float64
	DurationSeconds float64
}

func (p RoutePoint) IsValid() bool {
	return IsValidLatitude(p.Latitude) && IsValidLongitude(p.Longitude)
}
