//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracker_test
package tracker

import (
	"context"

	"tracking-service/internal/entities"
)

// Source отдает текущую точку заказа: локальное хранилище или удаленный эндпоинт чтения.
type Source interface {
	Get(ctx context.Context, orderID int64) (*entities.Position, error)
}
