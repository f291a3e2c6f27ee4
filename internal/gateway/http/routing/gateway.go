package routing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tracking-service/internal/entities"
	"tracking-service/internal/gateway/http/upstream"
	"tracking-service/internal/service/route"
)

// ServiceName - метка upstream-клиента маршрутизатора в метриках.
const ServiceName = "routing-service"

type Gateway struct {
	client  *upstream.Client
	profile string
}

func New(client *upstream.Client, profile string) *Gateway {
	return &Gateway{
		client:  client,
		profile: profile,
	}
}

// Route запрашивает /route/v1/{profile}/{lng},{lat};{lng},{lat}.
// OSRM отвечает 400 c code=NoRoute или NoSegment, если пути нет, поэтому
// тело 400 тоже разбирается.
func (g *Gateway) Route(ctx context.Context, start, end entities.RoutePoint) (*entities.RoutePath, error) {
	var resp routeResponse
	err := g.client.DoJSON(ctx, upstream.Request{
		Method:    http.MethodGet,
		Operation: "Route",
		Path:      fmt.Sprintf("route/v1/%s/%s;%s", g.profile, formatPoint(start), formatPoint(end)),
		Query: url.Values{
			"overview":     {"full"},
			"geometries":   {"geojson"},
			"alternatives": {"false"},
		},
		AcceptStatus: []int{http.StatusBadRequest},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway routing, route: %w", err)
	}

	switch resp.Code {
	case codeOk:
	case codeNoRoute, codeNoSegment:
		return nil, fmt.Errorf("gateway routing, route: code %q: %w", resp.Code, route.ErrNoRouteFound)
	default:
		return nil, fmt.Errorf("gateway routing, route: code %q: %s: %w", resp.Code, resp.Message, entities.ErrUpstreamData)
	}

	if len(resp.Routes) == 0 {
		return nil, route.ErrNoRouteFound
	}

	// первый маршрут - основной, альтернативы не нужны
	path, err := toDomain(&resp.Routes[0])
	if err != nil {
		return nil, fmt.Errorf("gateway routing, route: %w: %w", entities.ErrUpstreamData, err)
	}
	if len(path.Points) == 0 {
		return nil, route.ErrNoRouteFound
	}
	return path, nil
}

func formatPoint(p entities.RoutePoint) string {
	return strconv.FormatFloat(p.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Latitude, 'f', -1, 64)
}
