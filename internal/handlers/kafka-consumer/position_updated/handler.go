package position_updated

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracking-service/internal/entities"
	"tracking-service/pkg/logger"
)

const Topic = "position.updated"

type Handler struct {
	positionService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, positionService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		positionService:          positionService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("position.updated: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.messageProcessing(sess, message); stop {
				return nil
			}
		case <-sess.Context().Done():
			h.log.Info("position.updated: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если сообщение не обработано из-за
// отмены и его нужно перечитать после ребаланса.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event positionEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("position.updated handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	if event.Latitude == nil || event.Longitude == nil {
		msgLog.Warn("position.updated handler message without coordinates")
		sess.MarkMessage(message, "")
		return false
	}

	update := entities.PositionUpdate{
		OrderID:   event.OrderID,
		AgentID:   event.AgentID,
		Latitude:  *event.Latitude,
		Longitude: *event.Longitude,
	}
	if event.CapturedAt != nil {
		update.CapturedAt = time.UnixMilli(*event.CapturedAt).UTC()
	}

	err := h.positionService.Update(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.updated handler context cancelled, message will be reprocessed")
			return true
		case errors.Is(err, entities.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.updated handler rejected invalid position")
		default:
			// следующая точка агента перекроет потерянную
			msgLog.With(
				logger.NewField("error", err),
			).Error("position.updated handler failed to store position")
		}
		sess.MarkMessage(message, "")
		return false
	}

	sess.MarkMessage(message, "")
	return false
}
