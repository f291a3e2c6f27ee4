package notifications_unread_get

import (
	"net/http"

	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
)

type Handler struct {
	log   handlerLogger
	cache Cache
}

func New(log handlerLogger, cache Cache) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		cache: cache,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.UnreadCountResponse{UnreadCount: h.cache.UnreadCount()})
}
