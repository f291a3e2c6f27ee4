//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_cache_test
package notification_cache

import (
	"context"

	"tracking-service/internal/entities"
)

type Repository interface {
	DeleteAll(ctx context.Context) error
	InsertAll(ctx context.Context, records []entities.Notification) error
	MarkRead(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]entities.Notification, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
