package position_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/internal/service/position"
	"tracking-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["order_id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "order_id must be an integer")
		return
	}

	p, err := h.service.Get(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, position.ErrPositionNotFound):
			response.Error(w, h.log, http.StatusNotFound, position.ErrPositionNotFound.Error())
		case errors.Is(err, position.ErrInvalidOrderID), errors.Is(err, entities.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("get position failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromPosition(p))
}
