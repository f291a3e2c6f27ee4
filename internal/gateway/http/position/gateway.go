package position

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tracking-service/internal/entities"
	"tracking-service/internal/gateway/http/upstream"
	"tracking-service/internal/service/position"
)

const ServiceName = "position-service"

// Gateway - клиент эндпоинтов приема и чтения точек.
// Используется агентом (публикация) и трекером (чтение).
type Gateway struct {
	client *upstream.Client
}

func New(client *upstream.Client) *Gateway {
	return &Gateway{
		client: client,
	}
}

// SendPosition - POST /location/update, form-encoded.
func (g *Gateway) SendPosition(ctx context.Context, update entities.PositionUpdate) error {
	form := url.Values{
		"order_id": {strconv.FormatInt(update.OrderID, 10)},
		"lat":      {strconv.FormatFloat(update.Latitude, 'f', -1, 64)},
		"lng":      {strconv.FormatFloat(update.Longitude, 'f', -1, 64)},
	}
	if update.AgentID != nil {
		form.Set("delivery_partner_id", strconv.FormatInt(*update.AgentID, 10))
	}
	if !update.CapturedAt.IsZero() {
		form.Set("captured_at", strconv.FormatInt(update.CapturedAt.UnixMilli(), 10))
	}

	err := g.client.DoJSON(ctx, upstream.Request{
		Method:      http.MethodPost,
		Operation:   "SendPosition",
		Path:        "location/update",
		Body:        strings.NewReader(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	}, nil)
	if err != nil {
		return fmt.Errorf("gateway position, send position: %w", err)
	}
	return nil
}

// Get - GET /location/{order_id}. 404 означает, что точки еще нет.
func (g *Gateway) Get(ctx context.Context, orderID int64) (*entities.Position, error) {
	var resp positionResponse
	err := g.client.DoJSON(ctx, upstream.Request{
		Method:    http.MethodGet,
		Operation: "GetPosition",
		Path:      "location/" + strconv.FormatInt(orderID, 10),
	}, &resp)
	if upstream.IsStatus(err, http.StatusNotFound) {
		return nil, position.ErrPositionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gateway position, get position: %w", err)
	}

	if !entities.IsValidLatitude(resp.Latitude) || !entities.IsValidLongitude(resp.Longitude) {
		return nil, fmt.Errorf("gateway position, get position: %w: lat %v lng %v",
			entities.ErrUpstreamData, resp.Latitude, resp.Longitude)
	}
	return resp.toDomain(), nil
}
