package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		NotificationRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PositionUpdated PositionUpdated
	}

	PositionUpdated struct {
		ProcessTimeout time.Duration
	}

	// Upstream - внешние HTTP-сервисы: прием/чтение позиций, лента уведомлений, маршрутизатор.
	Upstream struct {
		PositionURL         string
		NotificationURL     string
		NotificationToken   string
		RoutingURL          string
		RoutingProfile      string
		RequestTimeout      time.Duration
		RoutingTimeout      time.Duration
		NotificationTimeout time.Duration
	}

	Notification struct {
		PageSize int
		MaxPages int
	}

	Publisher struct {
		Burst    int
		Interval time.Duration
	}

	Tracker struct {
		PollInterval time.Duration
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Redis        Redis
		Kafka        Kafka
		Upstream     Upstream
		Notification Notification
		Publisher    Publisher
		Tracker      Tracker
	}
)

const (
	defaultRoutingProfile   = "driving"
	defaultUpstreamTimeout  = 5 * time.Second
	defaultNotificationPage = 50
	defaultNotificationMax  = 20
	defaultPublisherBurst   = 1
	defaultPublisherEvery   = 5 * time.Second
	defaultTrackerInterval  = 5 * time.Second
)

// Load читает конфигурацию HTTP-сервиса.
func Load() (*Config, error) {
	return load(validateService)
}

// LoadWorker читает конфигурацию kafka-воркера позиций.
func LoadWorker() (*Config, error) {
	return load(validateWorker)
}

// LoadClient читает конфигурацию клиентских утилит (cmd/tracker, cmd/agent-simulator).
func LoadClient() (*Config, error) {
	return load(validateClient)
}

func load(validate func(*Config) error) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	refreshInterval, err := osGetEnvDuration("BACKGROUND_NOTIFICATION_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	positionUpdatedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_POSITION_UPDATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	upstreamTimeout, err := osGetEnvDuration("UPSTREAM_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routingTimeout, err := osGetEnvDuration("ROUTING_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationTimeout, err := osGetEnvDuration("NOTIFICATION_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pageSize, err := osGetInt("NOTIFICATION_PAGE_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxPages, err := osGetInt("NOTIFICATION_MAX_PAGES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publisherBurst, err := osGetInt("PUBLISHER_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publisherInterval, err := osGetEnvDuration("PUBLISHER_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackerInterval, err := osGetEnvDuration("TRACKER_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		Tasks: Tasks{
			NotificationRefreshInterval: refreshInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PositionUpdated: PositionUpdated{
					ProcessTimeout: positionUpdatedTimeout,
				},
			},
		},
		Upstream: Upstream{
			PositionURL:         os.Getenv("POSITION_SERVICE_URL"),
			NotificationURL:     os.Getenv("NOTIFICATION_SERVICE_URL"),
			NotificationToken:   os.Getenv("NOTIFICATION_SERVICE_TOKEN"),
			RoutingURL:          os.Getenv("ROUTING_SERVICE_URL"),
			RoutingProfile:      os.Getenv("ROUTING_PROFILE"),
			RequestTimeout:      upstreamTimeout,
			RoutingTimeout:      routingTimeout,
			NotificationTimeout: notificationTimeout,
		},
		Notification: Notification{
			PageSize: pageSize,
			MaxPages: maxPages,
		},
		Publisher: Publisher{
			Burst:    publisherBurst,
			Interval: publisherInterval,
		},
		Tracker: Tracker{
			PollInterval: trackerInterval,
		},
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Upstream.RoutingProfile == "" {
		cfg.Upstream.RoutingProfile = defaultRoutingProfile
	}
	if cfg.Upstream.RequestTimeout == 0 {
		cfg.Upstream.RequestTimeout = defaultUpstreamTimeout
	}
	if cfg.Upstream.RoutingTimeout == 0 {
		cfg.Upstream.RoutingTimeout = cfg.Upstream.RequestTimeout
	}
	if cfg.Upstream.NotificationTimeout == 0 {
		cfg.Upstream.NotificationTimeout = cfg.Upstream.RequestTimeout
	}
	if cfg.Notification.PageSize == 0 {
		cfg.Notification.PageSize = defaultNotificationPage
	}
	if cfg.Notification.MaxPages == 0 {
		cfg.Notification.MaxPages = defaultNotificationMax
	}
	if cfg.Publisher.Burst == 0 {
		cfg.Publisher.Burst = defaultPublisherBurst
	}
	if cfg.Publisher.Interval == 0 {
		cfg.Publisher.Interval = defaultPublisherEvery
	}
	if cfg.Tracker.PollInterval == 0 {
		cfg.Tracker.PollInterval = defaultTrackerInterval
	}
}

func validateService(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}
	if err := validateRedis(&cfg.Redis); err != nil {
		return err
	}

	if cfg.Tasks.NotificationRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_NOTIFICATION_REFRESH_INTERVAL is required")
	}

	if cfg.Upstream.NotificationURL == "" {
		return errors.New("NOTIFICATION_SERVICE_URL is required")
	}
	if cfg.Upstream.RoutingURL == "" {
		return errors.New("ROUTING_SERVICE_URL is required")
	}
	return validateLimits(cfg)
}

func validateWorker(cfg *Config) error {
	if err := validateRedis(&cfg.Redis); err != nil {
		return err
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PositionUpdated.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_POSITION_UPDATED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func validateClient(cfg *Config) error {
	if cfg.Upstream.PositionURL == "" {
		return errors.New("POSITION_SERVICE_URL is required")
	}
	if cfg.Upstream.RoutingURL == "" {
		return errors.New("ROUTING_SERVICE_URL is required")
	}
	return validateLimits(cfg)
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateRedis(cfg *Redis) error {
	if cfg.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.DB < 0 {
		return errors.New("REDIS_DB must be non-negative")
	}
	return nil
}

func validateLimits(cfg *Config) error {
	if cfg.Notification.PageSize < 0 || cfg.Notification.MaxPages < 0 {
		return errors.New("NOTIFICATION_PAGE_SIZE and NOTIFICATION_MAX_PAGES must be positive")
	}
	if cfg.Publisher.Burst < 0 || cfg.Publisher.Interval < 0 {
		return errors.New("PUBLISHER_BURST and PUBLISHER_INTERVAL must be positive")
	}
	if cfg.Tracker.PollInterval < 0 {
		return errors.New("TRACKER_POLL_INTERVAL must be positive")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
