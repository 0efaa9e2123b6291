package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	GeolocationNone   = "none"
	GeolocationStatic = "static"
	GeolocationFile   = "file"

	EventsNone      = "none"
	EventsKafka     = "kafka"
	EventsWebSocket = "websocket"
)

type (
	Tasks struct {
		ActiveOrdersInterval  time.Duration
		HistoryOrdersInterval time.Duration
		NearbyOrdersInterval  time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Backend struct {
		BaseURL   string
		Token     string
		PartnerID string

		// исходящий лимит запросов
		QPS   int
		Burst int

		Retry Retry
	}

	Retry struct {
		MaxRetries      uint64
		InitialInterval time.Duration
		MaxInterval     time.Duration
		MaxElapsedTime  time.Duration
	}

	Geolocation struct {
		Source       string
		Lat          float64
		Lng          float64
		TrackPath    string
		SamplePeriod time.Duration
	}

	Events struct {
		Transport      string
		ProcessTimeout time.Duration
		Kafka          Kafka
		WebSocketURL   string
	}

	Kafka struct {
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Config struct {
		LogLevel    string
		Tasks       Tasks
		Server      HTTPServer
		Backend     Backend
		Geolocation Geolocation
		Events      Events
		Database    Database
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

//nolint:funlen // плоский список переменных окружения
func loadFromEnv() (*Config, error) {
	activeInterval, err := osGetEnvDurationOr("BACKGROUND_ACTIVE_ORDERS_INTERVAL", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	historyInterval, err := osGetEnvDurationOr("BACKGROUND_HISTORY_ORDERS_INTERVAL", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	nearbyInterval, err := osGetEnvDurationOr("BACKGROUND_NEARBY_ORDERS_INTERVAL", 15*time.Second)
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

	backendQPS, err := osGetIntOr("BACKEND_RATE_LIMIT_QPS", 10)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backendBurst, err := osGetIntOr("BACKEND_RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxRetries, err := osGetIntOr("BACKEND_RETRY_MAX_RETRIES", 3)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	retryInitial, err := osGetEnvDurationOr("BACKEND_RETRY_INITIAL_INTERVAL", 200*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	retryMax, err := osGetEnvDurationOr("BACKEND_RETRY_MAX_INTERVAL", 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	retryElapsed, err := osGetEnvDurationOr("BACKEND_RETRY_MAX_ELAPSED_TIME", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lat, err := osGetFloat("GEOLOCATION_LAT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lng, err := osGetFloat("GEOLOCATION_LNG")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	samplePeriod, err := osGetEnvDurationOr("GEOLOCATION_SAMPLE_PERIOD", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	eventsTimeout, err := osGetEnvDurationOr("EVENTS_PROCESS_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			ActiveOrdersInterval:  activeInterval,
			HistoryOrdersInterval: historyInterval,
			NearbyOrdersInterval:  nearbyInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Backend: Backend{
			BaseURL:   os.Getenv("BACKEND_BASE_URL"),
			Token:     os.Getenv("PARTNER_TOKEN"),
			PartnerID: os.Getenv("PARTNER_ID"),
			QPS:       backendQPS,
			Burst:     backendBurst,
			Retry: Retry{
				MaxRetries:      uint64(maxRetries), //nolint:gosec // отрицательные значения отсекает валидация
				InitialInterval: retryInitial,
				MaxInterval:     retryMax,
				MaxElapsedTime:  retryElapsed,
			},
		},
		Geolocation: Geolocation{
			Source:       osGetEnvOr("GEOLOCATION_SOURCE", GeolocationNone),
			Lat:          lat,
			Lng:          lng,
			TrackPath:    os.Getenv("GEOLOCATION_TRACK_PATH"),
			SamplePeriod: samplePeriod,
		},
		Events: Events{
			Transport:      osGetEnvOr("EVENTS_TRANSPORT", EventsNone),
			ProcessTimeout: eventsTimeout,
			WebSocketURL:   os.Getenv("EVENTS_WEBSOCKET_URL"),
			Kafka: Kafka{
				Brokers:       os.Getenv("KAFKA_BROKERS"),
				Topic:         os.Getenv("KAFKA_TOPIC"),
				ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
				Sarama: Sarama{
					Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
					ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
				},
			},
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
	}, nil
}

// BrokerList список брокеров из KAFKA_BROKERS через запятую.
func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}

//nolint:gocyclo,cyclop // плоская валидация
func validateConfig(cfg *Config) error {
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

	if cfg.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}
	if cfg.Backend.QPS <= 0 || cfg.Backend.Burst <= 0 {
		return errors.New("BACKEND_RATE_LIMIT_QPS and BACKEND_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Backend.Retry.InitialInterval <= 0 || cfg.Backend.Retry.MaxInterval <= 0 {
		return errors.New("BACKEND_RETRY_INITIAL_INTERVAL and BACKEND_RETRY_MAX_INTERVAL must be positive")
	}

	if cfg.Tasks.ActiveOrdersInterval <= 0 {
		return errors.New("BACKGROUND_ACTIVE_ORDERS_INTERVAL must be positive")
	}
	if cfg.Tasks.HistoryOrdersInterval <= 0 {
		return errors.New("BACKGROUND_HISTORY_ORDERS_INTERVAL must be positive")
	}
	if cfg.Tasks.NearbyOrdersInterval <= 0 {
		return errors.New("BACKGROUND_NEARBY_ORDERS_INTERVAL must be positive")
	}

	switch cfg.Geolocation.Source {
	case GeolocationNone:
	case GeolocationStatic:
		if cfg.Geolocation.SamplePeriod <= 0 {
			return errors.New("GEOLOCATION_SAMPLE_PERIOD must be positive")
		}
	case GeolocationFile:
		if cfg.Geolocation.TrackPath == "" {
			return errors.New("GEOLOCATION_TRACK_PATH is required for file source")
		}
		if cfg.Geolocation.SamplePeriod <= 0 {
			return errors.New("GEOLOCATION_SAMPLE_PERIOD must be positive")
		}
	default:
		return fmt.Errorf("unknown GEOLOCATION_SOURCE %q", cfg.Geolocation.Source)
	}

	switch cfg.Events.Transport {
	case EventsNone:
	case EventsKafka:
		if len(cfg.Events.Kafka.BrokerList()) == 0 {
			return errors.New("KAFKA_BROKERS is required")
		}
		if cfg.Events.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required")
		}
		if cfg.Events.Kafka.ConsumerGroup == "" {
			return errors.New("KAFKA_CONSUMER_GROUP is required")
		}
		if cfg.Events.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required")
		}
	case EventsWebSocket:
		if cfg.Events.WebSocketURL == "" {
			return errors.New("EVENTS_WEBSOCKET_URL is required")
		}
	default:
		return fmt.Errorf("unknown EVENTS_TRANSPORT %q", cfg.Events.Transport)
	}
	if cfg.Events.ProcessTimeout <= 0 {
		return errors.New("EVENTS_PROCESS_TIMEOUT must be positive")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	return nil
}

func osGetEnvOr(s, def string) string {
	if val := strings.TrimSpace(os.Getenv(s)); val != "" {
		return val
	}
	return def
}

func osGetInt(s string) (int, error) {
	return osGetIntOr(s, 0)
}

func osGetIntOr(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	if res < 0 {
		return 0, fmt.Errorf("negative value for %s=%q", s, val)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	return osGetEnvDurationOr(s, 0)
}

func osGetEnvDurationOr(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
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
