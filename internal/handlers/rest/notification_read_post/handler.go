package notification_read_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/internal/service/notification"
	"tracking-service/internal/service/notification_cache"
	"tracking-service/pkg/logger"
)

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

// ServeHTTP - POST /notifications/{id}/read. 202, если локальная отметка
// сделана, а сервер ее не подтвердил.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "id must be an integer")
		return
	}

	err = h.engine.MarkRead(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, notification.ErrNotConfirmed):
			// локальная отметка уже сделана, даже если сервер ответил 404
			response.Error(w, h.log, http.StatusAccepted, notification.ErrNotConfirmed.Error())
		case errors.Is(err, notification_cache.ErrNotificationNotFound):
			response.Error(w, h.log, http.StatusNotFound, notification_cache.ErrNotificationNotFound.Error())
		default:
			h.log.With(
				logger.NewField("notification_id", id),
				logger.NewField("error", err),
			).Error("mark read failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
