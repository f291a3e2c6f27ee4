package position

import (
	"context"
	"errors"
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

// Service хранит одну текущую точку на заказ.
type Service struct {
	log        handlerLogger
	repository Repository
	now        func() time.Time
}

func New(log handlerLogger, repository Repository) *Service {
	return &Service{
		log:        log,
		repository: repository,
		now:        time.Now,
	}
}

// Update принимает точку агента. Точка вне допустимых границ не сохраняется.
// Устаревшая точка (CapturedAt раньше сохраненной) молча отбрасывается:
// для клиента это успешный прием.
func (s *Service) Update(ctx context.Context, update entities.PositionUpdate) error {
	if update.OrderID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOrderID, update.OrderID)
	}
	if update.AgentID != nil && *update.AgentID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAgentID, *update.AgentID)
	}
	if err := entities.ValidateCoordinates(update.Latitude, update.Longitude); err != nil {
		return err
	}

	onlyNewer := !update.CapturedAt.IsZero()
	capturedAt := update.CapturedAt
	if !onlyNewer {
		capturedAt = s.now()
	}

	err := s.repository.Save(ctx, entities.Position{
		OrderID:    update.OrderID,
		AgentID:    update.AgentID,
		Latitude:   update.Latitude,
		Longitude:  update.Longitude,
		CapturedAt: capturedAt.UTC(),
	}, onlyNewer)
	if errors.Is(err, ErrStalePosition) {
		s.log.Info("stale position dropped",
			logger.NewField("order_id", update.OrderID),
			logger.NewField("captured_at", capturedAt),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}

// Get возвращает текущую точку заказа или ErrPositionNotFound.
func (s *Service) Get(ctx context.Context, orderID int64) (*entities.Position, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
	}

	position, err := s.repository.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get position: %w", err)
	}
	return position, nil
}
