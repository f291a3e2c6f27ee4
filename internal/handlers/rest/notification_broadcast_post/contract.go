//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_broadcast_post_test
package notification_broadcast_post

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

type Engine interface {
	Broadcast(ctx context.Context, caller entities.Role, broadcast entities.Broadcast) error
}
