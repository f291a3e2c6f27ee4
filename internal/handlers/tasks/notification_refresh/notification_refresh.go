//go:generate mockgen -source=notification_refresh.go -destination=./notification_refresh_mocks_test.go -package=notification_refresh_test
package notification_refresh

import (
	"context"
	"time"
)

type Engine interface {
	Refresh(ctx context.Context) error
}

// NotificationRefresh периодически сверяет локальный кэш уведомлений
// с сервером.
type NotificationRefresh struct {
	engine   Engine
	interval time.Duration
}

func NewNotificationRefresh(engine Engine, interval time.Duration) *NotificationRefresh {
	return &NotificationRefresh{
		engine:   engine,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (n *NotificationRefresh) TTL() time.Duration {
	return n.interval
}

// Do выполняет один цикл синхронизации, не дольше интервала.
func (n *NotificationRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	return n.engine.Refresh(ctxWithTimeout)
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (n *NotificationRefresh) Info() string {
	return "notification refresh"
}

// Required - сервис стартует и без сервера уведомлений, отдавая
// сохраненную локальную копию.
func (n *NotificationRefresh) Required() bool {
	return false
}
