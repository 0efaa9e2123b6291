//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	backendGateway "partner/internal/gateway/rest/backend"
	"partner/internal/handlers/rest/availability_get"
	"partner/internal/handlers/rest/availability_patch"
	"partner/internal/handlers/rest/earnings_get"
	"partner/internal/handlers/rest/order_accept_post"
	"partner/internal/handlers/rest/order_cancel_post"
	"partner/internal/handlers/rest/order_delay_patch"
	"partner/internal/handlers/rest/order_reject_post"
	"partner/internal/handlers/rest/order_status_patch"
	"partner/internal/handlers/rest/payout_post"
	"partner/internal/handlers/rest/payouts_get"
	"partner/internal/handlers/rest/session_delete"
	"partner/internal/handlers/rest/session_get"
	"partner/internal/handlers/rest/session_post"
	"partner/internal/handlers/tasks/orders_refresh"
	"partner/internal/pkg/config"
	"partner/internal/pkg/credentials"
	"partner/internal/pkg/factory/order_handle"
	"partner/internal/pkg/geolocation"

	"partner/internal/entities"
	ledgerRepo "partner/internal/repository/ledger"
	availabilityService "partner/internal/service/availability"
	earningsService "partner/internal/service/earnings"
	ledgerService "partner/internal/service/ledger"
	"partner/internal/service/lifecycle"
	orderService "partner/internal/service/order"
	poolService "partner/internal/service/pool"
	sessionService "partner/internal/service/session"
	"partner/internal/service/snapshot"

	"partner/pkg/background"
	"partner/pkg/logger"
	"partner/pkg/querier"
	"partner/pkg/retrier"
	"partner/pkg/token_bucket"
	"partner/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

const backendRequestTimeout = 10 * time.Second

type Application struct {
	Credentials         *credentials.Provider
	Stores              *Stores
	Refresh             *Refresh
	ServiceOrder        *orderService.Service
	ServiceLifecycle    ServiceLifecycle
	ServicePool         ServicePool
	ServiceEarnings     ServiceEarnings
	ServiceAvailability ServiceAvailability
	ServiceLedger       *ledgerService.Service
	ServiceSession      ServiceSession
	Geolocation         *geolocation.Feed
	BackgroundWorkers   *background.Worker
}

// Stores снимки трёх коллекций заказов.
type Stores struct {
	Active  *snapshot.Store
	History *snapshot.Store
	Nearby  *snapshot.Store
}

// Refresh фоновые задачи опроса, по одной на коллекцию.
type Refresh struct {
	Active  *orders_refresh.OrdersRefresh
	History *orders_refresh.OrdersRefresh
	Nearby  *orders_refresh.OrdersRefresh
}

type ServiceLifecycle interface {
	order_status_patch.Service
	order_cancel_post.Service
	order_delay_patch.Service
}

type ServicePool interface {
	order_accept_post.Service
	order_reject_post.Service
}

type ServiceEarnings interface {
	earnings_get.Service
	payouts_get.Service
	payout_post.Service
}

type ServiceAvailability interface {
	availability_get.Service
	availability_patch.Service
}

type ServiceSession interface {
	session_get.Service
	session_post.Service
	session_delete.Service
}

// InitializeApplication для агента (cmd/partner-agent). Cleanup закрывает
// источник геолокации.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCredentials,
		provideRetryConfig,
		provideBackendGateway,

		provideStores,
		provideRefresh,
		provideTaskList,
		provideBackgroundWorkers,

		provideGeolocationSource,
		provideGeolocationFeed,

		provideLedgerRepository,
		provideServiceLedger,
		provideServiceLifecycle,
		provideServicePool,
		provideServiceEarnings,
		provideServiceAvailability,
		provideEventHandlerFactory,
		provideServiceOrder,
		provideServiceSession,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycle.Controller)),
		wire.Bind(new(ServicePool), new(*poolService.Service)),
		wire.Bind(new(ServiceEarnings), new(*earningsService.Service)),
		wire.Bind(new(ServiceAvailability), new(*availabilityService.Service)),
		wire.Bind(new(ServiceSession), new(*sessionService.Service)),

		wire.Bind(new(ledgerService.Repository), new(*ledgerRepo.Repository)),
		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lifecycle.CashLedger), new(*ledgerService.Service)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.EventHandlerFactory)),
	)
	return nil, nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCredentials(cfg *config.Config) *credentials.Provider {
	return credentials.New(cfg.Backend.Token, cfg.Backend.PartnerID)
}

func provideRetryConfig(cfg *config.Config) retrier.Config {
	return retrier.Config{
		InitialInterval: cfg.Backend.Retry.InitialInterval,
		MaxInterval:     cfg.Backend.Retry.MaxInterval,
		MaxElapsedTime:  cfg.Backend.Retry.MaxElapsedTime,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      cfg.Backend.Retry.MaxRetries,
	}
}

func provideBackendGateway(
	cfg *config.Config,
	creds *credentials.Provider,
	retryConfig retrier.Config,
) (*backendGateway.Gateway, error) {
	return backendGateway.New(
		cfg.Backend.BaseURL,
		&http.Client{Timeout: backendRequestTimeout},
		creds,
		token_bucket.NewTokenBucket(cfg.Backend.Burst, float64(cfg.Backend.QPS)),
		retryConfig,
	)
}

func provideStores() *Stores {
	return &Stores{
		Active:  snapshot.New(entities.CollectionActive),
		History: snapshot.New(entities.CollectionHistory),
		Nearby:  snapshot.New(entities.CollectionNearby),
	}
}

func provideRefresh(
	log logger.Logger,
	cfg *config.Config,
	stores *Stores,
	gateway *backendGateway.Gateway,
	feed *geolocation.Feed,
) *Refresh {
	return &Refresh{
		Active:  orders_refresh.NewActive(log, stores.Active, gateway, cfg.Tasks.ActiveOrdersInterval),
		History: orders_refresh.NewHistory(log, stores.History, gateway, cfg.Tasks.HistoryOrdersInterval),
		Nearby:  orders_refresh.NewNearby(log, stores.Nearby, gateway, feed, cfg.Tasks.NearbyOrdersInterval),
	}
}

func provideTaskList(refresh *Refresh) []background.Task {
	return []background.Task{
		refresh.Active,
		refresh.History,
		refresh.Nearby,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

// provideGeolocationSource источник координат по GEOLOCATION_SOURCE.
// Без источника подписка сразу получает ErrUnsupported.
func provideGeolocationSource(cfg *config.Config) (geolocation.Source, func(), error) {
	switch cfg.Geolocation.Source {
	case config.GeolocationStatic:
		pos := entities.Coordinates{Lat: cfg.Geolocation.Lat, Lng: cfg.Geolocation.Lng}
		return geolocation.NewStatic(pos, cfg.Geolocation.SamplePeriod), func() {}, nil
	case config.GeolocationFile:
		track, err := geolocation.OpenTrack(cfg.Geolocation.TrackPath, cfg.Geolocation.SamplePeriod)
		if err != nil {
			return nil, nil, err
		}
		return track, func() { _ = track.Close() }, nil
	default:
		return geolocation.Unsupported{}, func() {}, nil
	}
}

func provideGeolocationFeed(source geolocation.Source, log logger.Logger) *geolocation.Feed {
	return geolocation.NewFeed(source, log.With(logger.NewField("component", "geolocation")))
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideServiceLedger(
	repository ledgerService.Repository,
	txManager ledgerService.TxManager,
	log logger.Logger,
) *ledgerService.Service {
	return ledgerService.New(repository, txManager, log)
}

func provideServiceLifecycle(
	gateway *backendGateway.Gateway,
	stores *Stores,
	ledger lifecycle.CashLedger,
	refresh *Refresh,
	log logger.Logger,
) *lifecycle.Controller {
	return lifecycle.New(gateway, stores.Active, ledger, refresh.Active, log)
}

func provideServicePool(gateway *backendGateway.Gateway, refresh *Refresh, log logger.Logger) *poolService.Service {
	return poolService.New(gateway, refresh.Nearby, refresh.Active, log)
}

func provideServiceEarnings(gateway *backendGateway.Gateway, log logger.Logger) *earningsService.Service {
	return earningsService.New(gateway, log)
}

func provideServiceAvailability(gateway *backendGateway.Gateway, log logger.Logger) *availabilityService.Service {
	return availabilityService.New(gateway, log)
}

func provideEventHandlerFactory(refresh *Refresh) *order_handle.EventHandlerFactory {
	return order_handle.NewEventHandlerFactory(refresh.Active, refresh.Nearby)
}

// provideServiceOrder сервис событий и деталей заказа. Детали сначала
// ищутся в снимках, затем запрашиваются у бэкенда.
func provideServiceOrder(
	gateway *backendGateway.Gateway,
	handlerFactory orderService.HandlerFactory,
	log logger.Logger,
	stores *Stores,
) *orderService.Service {
	return orderService.New(gateway, handlerFactory, log, stores.Active, stores.History, stores.Nearby)
}

func provideServiceSession(
	creds *credentials.Provider,
	stores *Stores,
	availability *availabilityService.Service,
	refresh *Refresh,
	log logger.Logger,
) *sessionService.Service {
	return sessionService.New(
		creds,
		[]sessionService.Resetter{stores.Active, stores.History, stores.Nearby, availability},
		[]sessionService.Refresher{refresh.Active, refresh.History, refresh.Nearby},
		log,
	)
}
