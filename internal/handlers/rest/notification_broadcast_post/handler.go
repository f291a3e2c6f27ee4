package notification_broadcast_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/internal/service/notification"
	"tracking-service/pkg/logger"
)

// RoleHeader - роль вызывающего, проставляется шлюзом авторизации.
const RoleHeader = "X-User-Role"

const maxBodySize = 16 << 10

type Handler struct {
	log    handlerLogger
	engine Engine
}

func New(log handlerLogger, engine Engine) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		engine: engine,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.BroadcastRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	caller := entities.Role(r.Header.Get(RoleHeader))
	err := h.engine.Broadcast(r.Context(), caller, entities.Broadcast{
		Title:      req.Title,
		Body:       req.Body,
		TargetRole: entities.Role(req.TargetRole),
	})
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, notification.ErrForbidden.Error())
		case errors.Is(err, entities.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, entities.ErrSync):
			h.log.With(logger.NewField("error", err)).Warn("broadcast rejected upstream")
			response.Error(w, h.log, http.StatusBadGateway, "notification service unavailable")
		default:
			h.log.With(logger.NewField("error", err)).Error("broadcast failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
