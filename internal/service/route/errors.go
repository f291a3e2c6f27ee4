package route

import (
	"errors"
	"fmt"

	"tracking-service/internal/entities"
)

var (
	// ErrRoute оборачивает любую ошибку построения маршрута.
	ErrRoute = errors.New("route unavailable")

	// ErrNoRouteFound - маршрутизатор ответил, но пути между точками нет.
	ErrNoRouteFound = fmt.Errorf("no route found: %w", entities.ErrUpstreamData)
)
