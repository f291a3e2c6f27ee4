package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tracking-service/internal/entities"
	"tracking-service/internal/gateway/http/upstream"
	"tracking-service/internal/service/notification"
	"tracking-service/internal/service/notification_cache"
	retrierconfig "tracking-service/pkg/retrier"
)

const ServiceName = "notification-service"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// RetryConfig - повторы чтения ленты: только временные ошибки.
// Запись (mark read, broadcast) не повторяется.
func RetryConfig() retrierconfig.Config {
	return retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}
}

type Gateway struct {
	client  *upstream.Client
	retrier retrier
}

func New(client *upstream.Client, retrier retrier) *Gateway {
	return &Gateway{
		client:  client,
		retrier: retrier,
	}
}

// GetFeed - GET /notifications?limit&offset.
func (g *Gateway) GetFeed(ctx context.Context, limit, offset int) (*entities.NotificationFeed, error) {
	var resp feedResponse

	var attempt int
	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		resp = feedResponse{}
		return g.client.DoJSON(ctx, upstream.Request{
			Method:    http.MethodGet,
			Operation: "GetFeed",
			Path:      "notifications",
			Query: url.Values{
				"limit":  {strconv.Itoa(limit)},
				"offset": {strconv.Itoa(offset)},
			},
		}, &resp)
	})
	if attempt > 1 {
		upstream.GatewayRetriesTotal.WithLabelValues(ServiceName, "GetFeed").Inc()
	}
	if err != nil {
		return nil, fmt.Errorf("gateway notification, get feed: %w", err)
	}

	result, err := toDomainFeed(&resp)
	if err != nil {
		return nil, fmt.Errorf("gateway notification, get feed: %w", err)
	}
	return result, nil
}

// MarkRead - POST /notifications/{id}/read.
func (g *Gateway) MarkRead(ctx context.Context, id int64) error {
	err := g.client.DoJSON(ctx, upstream.Request{
		Method:    http.MethodPost,
		Operation: "MarkRead",
		Path:      "notifications/" + strconv.FormatInt(id, 10) + "/read",
	}, nil)
	if upstream.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("gateway notification, mark read %d: %w: %w", id, notification_cache.ErrNotificationNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("gateway notification, mark read %d: %w", id, err)
	}
	return nil
}

// Broadcast - POST /notifications/broadcast. 403 от сервера - ErrForbidden.
func (g *Gateway) Broadcast(ctx context.Context, broadcast entities.Broadcast) error {
	body, err := json.Marshal(broadcastRequest{
		Title:      broadcast.Title,
		Body:       broadcast.Body,
		TargetRole: broadcast.TargetRole.String(),
	})
	if err != nil {
		return fmt.Errorf("gateway notification, broadcast: marshal: %w", err)
	}

	err = g.client.DoJSON(ctx, upstream.Request{
		Method:      http.MethodPost,
		Operation:   "Broadcast",
		Path:        "notifications/broadcast",
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
	}, nil)
	if upstream.IsStatus(err, http.StatusForbidden) || upstream.IsStatus(err, http.StatusUnauthorized) {
		return fmt.Errorf("gateway notification, broadcast: %w: %w", notification.ErrForbidden, err)
	}
	if err != nil {
		return fmt.Errorf("gateway notification, broadcast: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, entities.ErrTransientFailure)
}
