package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tracking-service/internal/app"
	"tracking-service/internal/entities"
	"tracking-service/internal/pkg/config"
	"tracking-service/internal/pkg/dotenv"
	"tracking-service/internal/service/publisher"
	"tracking-service/pkg/logger"
	"tracking-service/pkg/logger/zap_adapter"
)

type options struct {
	orderID     int64
	agentID     int64
	from        entities.RoutePoint
	to          entities.RoutePoint
	metricsAddr string
	loop        bool
}

func parseFlags() (options, error) {
	var opts options
	flag.Int64Var(&opts.orderID, "order", 0, "order id")
	flag.Int64Var(&opts.agentID, "agent", 0, "delivery partner id, 0 - not sent")
	flag.Float64Var(&opts.from.Latitude, "from-lat", 0, "start latitude")
	flag.Float64Var(&opts.from.Longitude, "from-lng", 0, "start longitude")
	flag.Float64Var(&opts.to.Latitude, "to-lat", 0, "destination latitude")
	flag.Float64Var(&opts.to.Longitude, "to-lng", 0, "destination longitude")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", ":2112", "prometheus listen address, empty - disabled")
	flag.BoolVar(&opts.loop, "loop", false, "drive the route back and forth until interrupted")
	flag.Parse()

	if opts.orderID <= 0 {
		return opts, errors.New("-order is required")
	}
	return opts, nil
}

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	opts, err := parseFlags()
	if err != nil {
		mainLog.Error("invalid arguments", logger.NewField("error", err))
		flag.Usage()
		os.Exit(2)
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	}

	cfg, err := config.LoadClient()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), appLogger, cfg, opts); err != nil {
		mainLog.Error("simulator failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, opts options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	clientApp, err := app.InitializeClientApp(log, cfg)
	if err != nil {
		return fmt.Errorf("client app: %w", err)
	}

	if opts.metricsAddr != "" {
		metricsServer := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", logger.NewField("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx) //nolint:contextcheck // ctx уже отменен
		}()
	}

	path, err := clientApp.RouteResolver.Resolve(ctx, opts.from, opts.to)
	if err != nil {
		return fmt.Errorf("resolve route: %w", err)
	}

	var agentID *int64
	if opts.agentID > 0 {
		agentID = &opts.agentID
	}

	sim := &simulator{
		log:       log.With(logger.NewField("order_id", opts.orderID)),
		publisher: clientApp.Publisher,
		orderID:   opts.orderID,
		agentID:   agentID,
		cadence:   cfg.Publisher.Interval,
	}

	sim.log.With(
		logger.NewField("points", len(path.Points)),
		logger.NewField("distance_m", path.DistanceMeters),
		logger.NewField("cadence", sim.cadence.String()),
	).Info("simulation started")

	points := path.Points
	for {
		if err := sim.drive(ctx, points); err != nil {
			if errors.Is(err, context.Canceled) {
				sim.log.Info("simulation interrupted")
				return nil
			}
			return err
		}
		if !opts.loop {
			sim.log.Info("destination reached")
			return nil
		}
		points = reversed(points)
	}
}

type simulator struct {
	log       logger.Logger
	publisher *publisher.Publisher
	orderID   int64
	agentID   *int64
	cadence   time.Duration
}

// drive публикует точки маршрута по одной за cadence. Отказ лимитера или
// транспорта не прерывает поездку: следующая точка уйдет на следующем тике.
func (s *simulator) drive(ctx context.Context, points []entities.RoutePoint) error {
	ticker := time.NewTicker(s.cadence)
	defer ticker.Stop()

	for i, p := range points {
		start := time.Now()
		err := s.publisher.Publish(ctx, s.orderID, s.agentID, p.Latitude, p.Longitude)
		publishDuration.Observe(time.Since(start).Seconds())

		switch {
		case err == nil:
			pointsPublished.Inc()
		case errors.Is(err, entities.ErrValidation):
			return fmt.Errorf("point %d: %w", i, err)
		default:
			s.log.With(
				logger.NewField("point", i),
				logger.NewField("error", err),
			).Warn("publish failed")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func reversed(points []entities.RoutePoint) []entities.RoutePoint {
	out := make([]entities.RoutePoint, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
