package notifications_refresh_post

import (
	"errors"
	"net/http"

	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/internal/service/notification"
	"tracking-service/pkg/logger"
)

// Handler запускает цикл синхронизации и отвечает статусом после него.
// При сбое кэш остается прежним, клиент получает 502 и последнюю ошибку.
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
	err := h.engine.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			return
		}
		h.log.With(logger.NewField("error", err)).Warn("notification refresh failed")
		response.JSON(w, h.log, http.StatusBadGateway, toStatusResponse(h.engine.Status()))
		return
	}

	response.JSON(w, h.log, http.StatusOK, toStatusResponse(h.engine.Status()))
}

func toStatusResponse(s notification.Status) dto.SyncStatusResponse {
	resp := dto.SyncStatusResponse{State: s.State.String()}
	if !s.LastSyncAt.IsZero() {
		ms := s.LastSyncAt.UnixMilli()
		resp.LastSyncAt = &ms
	}
	if s.LastError != nil {
		msg := s.LastError.Error()
		resp.LastError = &msg
	}
	return resp
}
