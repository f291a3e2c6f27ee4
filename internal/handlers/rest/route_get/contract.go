//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_get_test
package route_get

import (
	"context"

	"tracking-service/internal/entities"
	"tracking-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type PositionService interface {
	Get(ctx context.Context, orderID int64) (*entities.Position, error)
}

type Resolver interface {
	Resolve(ctx context.Context, start, end entities.RoutePoint) (*entities.RoutePath, error)
}
