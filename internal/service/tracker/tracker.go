package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking-service/internal/service/position"
	"tracking-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Tracker запускает сессии опроса текущей точки заказа.
type Tracker struct {
	log    handlerLogger
	source Source
}

func New(log handlerLogger, source Source) *Tracker {
	return &Tracker{
		log:    log,
		source: source,
	}
}

// Start запускает опрос: первый запрос сразу, дальше раз в interval.
// Сессия живет до Stop или отмены ctx. Повторный Start для того же
// заказа создает независимую сессию.
func (t *Tracker) Start(ctx context.Context, orderID int64, interval time.Duration) (*Session, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	session := newSession(ctx)
	TrackerActiveSessions.Inc()

	go t.poll(session, orderID, interval)

	return session, nil
}

func (t *Tracker) poll(s *Session, orderID int64, interval time.Duration) {
	defer TrackerActiveSessions.Dec()
	defer s.Stop()

	log := t.log.With(logger.NewField("order_id", orderID))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		t.fetch(s, log, orderID)

		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// fetch ошибки не пробрасывает: следующий тик повторит запрос.
func (t *Tracker) fetch(s *Session, log logger.Logger, orderID int64) {
	p, err := t.source.Get(s.ctx, orderID)
	switch {
	case err == nil:
		TrackerFetchTotal.WithLabelValues("ok").Inc()
		s.emit(*p)
	case errors.Is(err, position.ErrPositionNotFound):
		TrackerFetchTotal.WithLabelValues("not_found").Inc()
	case s.ctx.Err() != nil:
		TrackerFetchTotal.WithLabelValues("cancelled").Inc()
	default:
		TrackerFetchTotal.WithLabelValues("failed").Inc()
		log.Warn("tracker fetch failed", logger.NewField("error", err))
	}
}
