//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_unread_get_test
package notifications_unread_get

import "tracking-service/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Cache interface {
	UnreadCount() int
}
