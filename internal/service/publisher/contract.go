//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=publisher_test
package publisher

import (
	"context"

	"tracking-service/internal/entities"
)

type Gateway interface {
	SendPosition(ctx context.Context, update entities.PositionUpdate) error
}

type Limiter interface {
	Allow() bool
}
