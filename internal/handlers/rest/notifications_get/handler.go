package notifications_get

import (
	"net/http"

	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
)

// Handler отдает локальную копию ленты, без обращения к серверу.
// Необязательный ?role оставляет записи одной роли.
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var role *entities.Role
	if v := r.URL.Query().Get("role"); v != "" {
		parsed := entities.Role(v)
		if !parsed.IsValid() {
			response.Error(w, h.log, http.StatusBadRequest, "role must be one of: customer admin delivery_agent")
			return
		}
		role = &parsed
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromNotifications(h.cache.Query(role)))
}
