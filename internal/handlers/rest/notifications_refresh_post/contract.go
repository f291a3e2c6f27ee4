//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_refresh_post_test
package notifications_refresh_post

import (
	"context"

	"tracking-service/internal/service/notification"
	"tracking-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Engine interface {
	Refresh(ctx context.Context) error
	Status() notification.Status
}
