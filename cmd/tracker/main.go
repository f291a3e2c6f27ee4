package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracking-service/internal/app"
	"tracking-service/internal/entities"
	"tracking-service/internal/pkg/config"
	"tracking-service/internal/pkg/dotenv"
	"tracking-service/pkg/logger"
	"tracking-service/pkg/logger/zap_adapter"
)

type options struct {
	orderID  int64
	destLat  float64
	destLng  float64
	interval time.Duration
	duration time.Duration
}

func parseFlags() (options, error) {
	var opts options
	flag.Int64Var(&opts.orderID, "order", 0, "order id to follow")
	flag.Float64Var(&opts.destLat, "dest-lat", 0, "destination latitude")
	flag.Float64Var(&opts.destLng, "dest-lng", 0, "destination longitude")
	flag.DurationVar(&opts.interval, "interval", 0, "poll interval (default TRACKER_POLL_INTERVAL)")
	flag.DurationVar(&opts.duration, "duration", 0, "stop after this long, 0 - until interrupted")
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
	if opts.interval == 0 {
		opts.interval = cfg.Tracker.PollInterval
	}

	if err := run(context.Background(), appLogger, cfg, opts); err != nil {
		mainLog.Error("tracker failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, opts options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	clientApp, err := app.InitializeClientApp(log, cfg)
	if err != nil {
		return fmt.Errorf("client app: %w", err)
	}

	runLog := log.With(logger.NewField("order_id", opts.orderID))

	session, err := clientApp.Tracker.Start(ctx, opts.orderID, opts.interval)
	if err != nil {
		return fmt.Errorf("start tracking: %w", err)
	}
	defer session.Stop()

	runLog.Info("tracking started", logger.NewField("interval", opts.interval.String()))

	dest := entities.RoutePoint{Latitude: opts.destLat, Longitude: opts.destLng}
	withRoute := opts.destLat != 0 || opts.destLng != 0

	for p := range session.Positions() {
		posLog := runLog.With(
			logger.NewField("lat", p.Latitude),
			logger.NewField("lng", p.Longitude),
			logger.NewField("captured_at", p.CapturedAt.Format(time.RFC3339)),
		)
		if !withRoute {
			posLog.Info("position")
			continue
		}

		start := entities.RoutePoint{Latitude: p.Latitude, Longitude: p.Longitude}
		path, err := clientApp.RouteResolver.Resolve(ctx, start, dest)
		if err != nil {
			posLog.With(logger.NewField("error", err)).Warn("position, route unavailable")
			continue
		}
		posLog.With(
			logger.NewField("distance_m", path.DistanceMeters),
			logger.NewField("duration_s", path.DurationSeconds),
			logger.NewField("points", len(path.Points)),
		).Info("position")
	}

	runLog.Info("tracking stopped")
	return nil
}
