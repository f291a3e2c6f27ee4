package route_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/internal/service/position"
	"tracking-service/internal/service/route"
	"tracking-service/pkg/logger"
)

// Handler строит маршрут от последней точки заказа до точки назначения.
type Handler struct {
	log       handlerLogger
	positions PositionService
	resolver  Resolver
}

func New(log handlerLogger, positions PositionService, resolver Resolver) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		positions: positions,
		resolver:  resolver,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["order_id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "order_id must be an integer")
		return
	}

	query, err := parseQuery(r)
	if err == nil {
		err = dto.Validate(query)
	}
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.positions.Get(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, position.ErrPositionNotFound):
			response.Error(w, h.log, http.StatusNotFound, position.ErrPositionNotFound.Error())
		case errors.Is(err, entities.ErrValidation):
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

	start := entities.RoutePoint{Latitude: current.Latitude, Longitude: current.Longitude}
	end := entities.RoutePoint{Latitude: *query.Latitude, Longitude: *query.Longitude}

	path, err := h.resolver.Resolve(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, route.ErrNoRouteFound):
			response.Error(w, h.log, http.StatusNotFound, "no route found")
		case errors.Is(err, entities.ErrTransientFailure):
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Warn("routing provider unavailable")
			response.Error(w, h.log, http.StatusServiceUnavailable, "routing provider unavailable")
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("resolve route failed")
			response.Error(w, h.log, http.StatusBadGateway, "routing provider error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromRoute(path))
}

func parseQuery(r *http.Request) (*dto.RouteQuery, error) {
	var (
		query dto.RouteQuery
		err   error
	)

	if query.Latitude, err = optionalFloat(r, "lat"); err != nil {
		return nil, err
	}
	if query.Longitude, err = optionalFloat(r, "lng"); err != nil {
		return nil, err
	}
	return &query, nil
}

func optionalFloat(r *http.Request, key string) (*float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}
