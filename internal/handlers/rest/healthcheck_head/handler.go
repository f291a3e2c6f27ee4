package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"tracking-service/pkg/logger"
)

const checkTimeout = time.Second

// PingFunc приводит функцию к Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Handler отвечает 503 во время остановки и при недоступной зависимости.
type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	checks         map[string]Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, checks map[string]Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		isShuttingDown: isShuttingDown,
		checks:         checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.log.With(
				logger.NewField("dependency", name),
				logger.NewField("error", err),
			).Warn("healthcheck failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
