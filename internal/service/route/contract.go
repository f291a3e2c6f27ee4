//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"tracking-service/internal/entities"
)

type Gateway interface {
	Route(ctx context.Context, start, end entities.RoutePoint) (*entities.RoutePath, error)
}
