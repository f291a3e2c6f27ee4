package route

import (
	"context"
	"fmt"

	"tracking-service/internal/entities"
)

// Resolver строит маршрут через внешний маршрутизатор. Ничего не кэширует
// и не повторяет запрос: маршрут зависит от текущей дорожной обстановки.
type Resolver struct {
	gateway Gateway
}

func New(gateway Gateway) *Resolver {
	return &Resolver{
		gateway: gateway,
	}
}

// Resolve возвращает первый предложенный маршрут от start до end.
// Все ошибки оборачивают ErrRoute. Пустой ответ - ErrNoRouteFound,
// пустой RoutePath не возвращается никогда.
func (r *Resolver) Resolve(ctx context.Context, start, end entities.RoutePoint) (*entities.RoutePath, error) {
	if err := entities.ValidateCoordinates(start.Latitude, start.Longitude); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrRoute, err)
	}
	if err := entities.ValidateCoordinates(end.Latitude, end.Longitude); err != nil {
		return nil, fmt.Errorf("%w: end: %w", ErrRoute, err)
	}

	path, err := r.gateway.Route(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoute, err)
	}
	if path == nil || len(path.Points) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrRoute, ErrNoRouteFound)
	}
	return path, nil
}
