//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_stream_test
package tracking_stream

import (
	"context"
	"time"

	"tracking-service/internal/service/tracker"
	"tracking-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Tracker interface {
	Start(ctx context.Context, orderID int64, interval time.Duration) (*tracker.Session, error)
}
