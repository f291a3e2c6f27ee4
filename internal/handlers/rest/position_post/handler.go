package position_post

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/pkg/logger"
)

// maxFormSize - тело точки занимает десятки байт
const maxFormSize = 4 << 10

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

// ServeHTTP - POST /location/update, form-encoded.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "malformed form body")
		return
	}

	form, err := parseForm(r)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}
	if err := dto.Validate(form); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	update := entities.PositionUpdate{
		OrderID:   form.OrderID,
		AgentID:   form.AgentID,
		Latitude:  *form.Latitude,
		Longitude: *form.Longitude,
	}
	if form.CapturedAt != nil {
		update.CapturedAt = time.UnixMilli(*form.CapturedAt).UTC()
	}

	err = h.service.Update(r.Context(), update)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("order_id", form.OrderID),
				logger.NewField("error", err),
			).Error("position update failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseForm(r *http.Request) (*dto.PositionUpdateForm, error) {
	var (
		form dto.PositionUpdateForm
		err  error
	)

	if v := r.PostForm.Get("order_id"); v != "" {
		if form.OrderID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, errors.New("order_id must be an integer")
		}
	}
	if form.AgentID, err = optionalInt(r, "delivery_partner_id"); err != nil {
		return nil, err
	}
	if form.CapturedAt, err = optionalInt(r, "captured_at"); err != nil {
		return nil, err
	}
	if form.Latitude, err = optionalFloat(r, "lat"); err != nil {
		return nil, err
	}
	if form.Longitude, err = optionalFloat(r, "lng"); err != nil {
		return nil, err
	}
	return &form, nil
}

func optionalInt(r *http.Request, key string) (*int64, error) {
	v := r.PostForm.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

func optionalFloat(r *http.Request, key string) (*float64, error) {
	v := r.PostForm.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}
