package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "partner/internal/app"
	"partner/internal/handlers/kafka-consumer/order_events"
	"partner/internal/handlers/rest/availability_get"
	"partner/internal/handlers/rest/availability_patch"
	"partner/internal/handlers/rest/earnings_get"
	"partner/internal/handlers/rest/healthcheck_head"
	"partner/internal/handlers/rest/ledger_get"
	"partner/internal/handlers/rest/order_accept_post"
	"partner/internal/handlers/rest/order_cancel_post"
	"partner/internal/handlers/rest/order_delay_patch"
	"partner/internal/handlers/rest/order_get"
	"partner/internal/handlers/rest/order_reject_post"
	"partner/internal/handlers/rest/order_status_patch"
	"partner/internal/handlers/rest/orders_get"
	"partner/internal/handlers/rest/payout_post"
	"partner/internal/handlers/rest/payouts_get"
	"partner/internal/handlers/rest/ping_get"
	"partner/internal/handlers/rest/session_delete"
	"partner/internal/handlers/rest/session_get"
	"partner/internal/handlers/rest/session_post"
	"partner/internal/pkg/config"
	"partner/internal/pkg/dotenv"
	"partner/internal/pkg/kafka"
	metrics_system "partner/internal/pkg/metrics"
	"partner/internal/pkg/middlewares/graceful_shutdown"
	"partner/internal/pkg/middlewares/metrics"
	"partner/internal/pkg/middlewares/rate_limiter"
	"partner/internal/pkg/middlewares/timeout"
	"partner/internal/pkg/migrate"
	"partner/internal/pkg/postgres"
	"partner/internal/pkg/realtime"
	"partner/pkg/logger"
	"partner/pkg/logger/zap_adapter"
	"partner/pkg/retrier"
	"partner/pkg/token_bucket"
)

func main() {
	// уровень логов известен только после загрузки .env
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
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

	mainLog.Info("starting partner-agent application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck,gocyclo,cyclop,funlen // последовательность запуска и graceful shutdown в одном месте
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 2 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := migrate.Up(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx)

	businessApp.Geolocation.Subscribe(ctx, businessApp.Refresh.Nearby)
	defer businessApp.Geolocation.Unsubscribe()

	eventsErr, err := startEvents(ctx, log, cfg, businessApp)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// локальный API для интерфейса партнёра
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // если pprof выключен, канал nil и кейс не сработает
		return fmt.Errorf("pprof server: %w", err)
	case err := <-eventsErr: // nil при EVENTS_TRANSPORT=none, закрыт после отмены ctx
		if err != nil {
			return fmt.Errorf("events: %w", err)
		}
		runLog.Info("Shutdown signal received")
	}

	businessApp.Stores.Shutdown(stop)
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

// startEvents запускает выбранный транспорт событий заказов. Возвращённый
// канал получает ошибку, если транспорт остановился не из-за отмены ctx.
func startEvents(ctx context.Context, log logger.Logger, cfg *config.Config, app *application.Application) (<-chan error, error) {
	runLog := log.With(logger.NewField("transport", cfg.Events.Transport))

	switch cfg.Events.Transport {
	case config.EventsKafka:
		handler := order_events.New(log, app.ServiceOrder, cfg.Events.ProcessTimeout)

		consumer, err := kafka.NewConsumer(ctx, log, &cfg.Events.Kafka, handler)
		if err != nil {
			return nil, fmt.Errorf("kafka consumer: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			defer close(errCh)
			defer func() {
				if err := consumer.Close(); err != nil {
					runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
				}
			}()

			runLog.With(
				logger.NewField("brokers", cfg.Events.Kafka.BrokerList()),
				logger.NewField("topic", cfg.Events.Kafka.Topic),
				logger.NewField("group", cfg.Events.Kafka.ConsumerGroup),
			).Info("Kafka consumer starting")

			if err := consumer.Start(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
					runLog.Info("Kafka consumer stopped gracefully")
					return
				}
				errCh <- err
			}
		}()
		return errCh, nil

	case config.EventsWebSocket:
		// переподключение без ограничения по времени, пока агент запущен
		listener := realtime.New(
			cfg.Events.WebSocketURL,
			app.Credentials,
			app.ServiceOrder,
			log,
			retrier.Config{
				InitialInterval: time.Second,
				MaxInterval:     30 * time.Second,
				Randomization:   0.5,
				Multiplier:      2,
			},
			cfg.Events.ProcessTimeout,
		)

		errCh := make(chan error, 1)
		go func() {
			defer close(errCh)
			runLog.Info("realtime listener starting")

			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
				return
			}
			runLog.Info("realtime listener stopped")
		}()
		return errCh, nil

	default:
		runLog.Info("order events disabled, relying on polling")
		return nil, nil
	}
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	db healthcheck_head.Pinger,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db, app.Credentials.LoggedIn)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/orders/active", orders_get.New(log, app.Stores.Active, app.Refresh.Active)).Methods("GET")
	router.Handle("/orders/history", orders_get.New(log, app.Stores.History, app.Refresh.History)).Methods("GET")
	router.Handle("/orders/available", orders_get.New(log, app.Stores.Nearby, app.Refresh.Nearby)).Methods("GET")

	router.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}/accept", order_accept_post.New(log, app.ServicePool)).Methods("POST")
	router.Handle("/orders/{id}/reject", order_reject_post.New(log, app.ServicePool)).Methods("POST")
	router.Handle("/orders/{id}/status", order_status_patch.New(log, app.ServiceLifecycle)).Methods("PATCH")
	router.Handle("/orders/{id}/cancel", order_cancel_post.New(log, app.ServiceLifecycle)).Methods("POST")
	router.Handle("/orders/{id}/report-delay", order_delay_patch.New(log, app.ServiceLifecycle)).Methods("PATCH")

	router.Handle("/earnings", earnings_get.New(log, app.ServiceEarnings)).Methods("GET")
	router.Handle("/payouts", payouts_get.New(log, app.ServiceEarnings)).Methods("GET")
	router.Handle("/payouts", payout_post.New(log, app.ServiceEarnings)).Methods("POST")

	router.Handle("/availability", availability_get.New(log, app.ServiceAvailability)).Methods("GET")
	router.Handle("/availability", availability_patch.New(log, app.ServiceAvailability)).Methods("PATCH")

	router.Handle("/ledger", ledger_get.New(log, app.ServiceLedger)).Methods("GET")

	router.Handle("/session", session_get.New(log, app.ServiceSession)).Methods("GET")
	router.Handle("/session", session_post.New(log, app.ServiceSession)).Methods("POST")
	router.Handle("/session", session_delete.New(log, app.ServiceSession)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
