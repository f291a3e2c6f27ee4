package tracking_stream

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"tracking-service/internal/entities"
	"tracking-service/internal/handlers/dto"
	"tracking-service/internal/handlers/rest/response"
	"tracking-service/pkg/logger"
)

const (
	writeTimeout = 5 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10

	minInterval = time.Second
)

type Config struct {
	// DefaultInterval - период опроса, если клиент не передал ?interval
	DefaultInterval time.Duration
}

// Handler - GET /orders/{order_id}/track. Держит websocket и пишет в него
// каждую новую точку заказа, пока клиент не закроет соединение.
type Handler struct {
	log      handlerLogger
	tracker  Tracker
	config   Config
	upgrader websocket.Upgrader
}

func New(log handlerLogger, tracker Tracker, config Config) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		tracker: tracker,
		config:  config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["order_id"], 10, 64)
	if err != nil || orderID <= 0 {
		response.Error(w, h.log, http.StatusBadRequest, "order_id must be a positive integer")
		return
	}

	interval, err := h.interval(r)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.log.With(logger.NewField("error", err)).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	streamLog := h.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("interval", interval.String()),
	)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session, err := h.tracker.Start(ctx, orderID, interval)
	if err != nil {
		streamLog.With(logger.NewField("error", err)).Error("start tracking failed")
		writeClose(conn, websocket.CloseInternalServerErr, "tracking unavailable")
		return
	}
	defer session.Stop()

	go readLoop(conn, cancel)

	streamLog.Info("tracking stream opened")
	h.stream(conn, session.Positions(), streamLog)
	streamLog.Info("tracking stream closed")
}

func (h *Handler) stream(conn *websocket.Conn, positions <-chan entities.Position, log logger.Logger) {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	var last *entities.Position
	for {
		select {
		case p, ok := <-positions:
			if !ok {
				writeClose(conn, websocket.CloseNormalClosure, "")
				return
			}
			if last != nil && samePosition(*last, p) {
				continue
			}
			last = &p

			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(dto.FromPosition(&p)); err != nil {
				log.With(logger.NewField("error", err)).Warn("write position failed")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (h *Handler) interval(r *http.Request) (time.Duration, error) {
	v := r.URL.Query().Get("interval")
	if v == "" {
		return h.config.DefaultInterval, nil
	}

	interval, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.New("interval must be a duration, e.g. 5s")
	}
	if interval < minInterval {
		return 0, errors.New("interval must be at least 1s")
	}
	return interval, nil
}

// readLoop нужен для обработки control-фреймов. Любая ошибка чтения
// означает, что клиент ушел.
func readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeTimeout),
	)
}

func samePosition(a, b entities.Position) bool {
	return a.Latitude == b.Latitude &&
		a.Longitude == b.Longitude &&
		a.CapturedAt.Equal(b.CapturedAt)
}
