package publisher

import (
	"context"
	"fmt"
	"time"

	"tracking-service/internal/entities"
	"tracking-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Publisher отправляет точки агента на сервер. Без повторов и буферизации:
// потерянная точка перекрывается следующей.
type Publisher struct {
	log     handlerLogger
	gateway Gateway
	limiter Limiter
	now     func() time.Time
}

func New(log handlerLogger, gateway Gateway, limiter Limiter) *Publisher {
	return &Publisher{
		log:     log,
		gateway: gateway,
		limiter: limiter,
		now:     time.Now,
	}
}

// Publish валидирует точку и отправляет ее одним запросом.
// Ошибки валидации и превышение лимита возвращаются до любого I/O.
func (p *Publisher) Publish(ctx context.Context, orderID int64, agentID *int64, lat, lng float64) error {
	if orderID <= 0 {
		PublishTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
	}
	if agentID != nil && *agentID <= 0 {
		PublishTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: %d", ErrInvalidAgentID, *agentID)
	}
	if err := entities.ValidateCoordinates(lat, lng); err != nil {
		PublishTotal.WithLabelValues("invalid").Inc()
		return err
	}

	if !p.limiter.Allow() {
		PublishTotal.WithLabelValues("rate_limited").Inc()
		return ErrRateLimited
	}

	err := p.gateway.SendPosition(ctx, entities.PositionUpdate{
		OrderID:    orderID,
		AgentID:    agentID,
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: p.now().UTC(),
	})
	if err != nil {
		PublishTotal.WithLabelValues("failed").Inc()
		p.log.Warn("position publish failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
		return fmt.Errorf("publish position: %w", err)
	}

	PublishTotal.WithLabelValues("sent").Inc()
	return nil
}
