//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"tracking-service/internal/entities"
)

// Gateway - удаленная лента уведомлений.
type Gateway interface {
	GetFeed(ctx context.Context, limit, offset int) (*entities.NotificationFeed, error)
	MarkRead(ctx context.Context, id int64) error
	Broadcast(ctx context.Context, broadcast entities.Broadcast) error
}

// Cache - локальная копия ленты.
type Cache interface {
	ReplaceAll(ctx context.Context, records []entities.Notification) error
	MarkRead(ctx context.Context, id int64) error
}
