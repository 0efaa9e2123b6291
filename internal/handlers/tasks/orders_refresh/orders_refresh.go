package orders_refresh

import (
	"context"
	"fmt"
	"time"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type fetcher func(ctx context.Context) ([]entities.Order, error)

// guard false - опрос пропускается, ошибка - выставляется в снапшот.
type guard func() (bool, error)

type OrdersRefresh struct {
	log      handlerLogger
	store    Store
	fetch    fetcher
	guard    guard
	interval time.Duration
	triggers chan struct{}
}

func newOrdersRefresh(log handlerLogger, store Store, fetch fetcher, interval time.Duration) *OrdersRefresh {
	return &OrdersRefresh{
		log:      log,
		store:    store,
		fetch:    fetch,
		interval: interval,
		triggers: make(chan struct{}, 1),
	}
}

func NewActive(log handlerLogger, store Store, gateway Gateway, interval time.Duration) *OrdersRefresh {
	return newOrdersRefresh(log, store, gateway.ActiveOrders, interval)
}

func NewHistory(log handlerLogger, store Store, gateway Gateway, interval time.Duration) *OrdersRefresh {
	return newOrdersRefresh(log, store, gateway.History, interval)
}

// NewNearby опрашивает доступные заказы вокруг последней позиции.
// Пока позиции нет, тик пропускается.
func NewNearby(log handlerLogger, store Store, gateway Gateway, locator Locator, interval time.Duration) *OrdersRefresh {
	fetch := func(ctx context.Context) ([]entities.Order, error) {
		at, ok, err := locator.Position()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNoPosition
		}
		return gateway.Nearby(ctx, at)
	}

	r := newOrdersRefresh(log, store, fetch, interval)
	r.guard = func() (bool, error) {
		_, ok, err := locator.Position()
		if err != nil {
			return false, err
		}
		return ok, nil
	}
	return r
}

func (o *OrdersRefresh) TTL() time.Duration {
	return o.interval
}

func (o *OrdersRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	collection := o.store.Collection().String()

	if o.guard != nil {
		ready, err := o.guard()
		if err != nil {
			o.store.Fail(o.store.Begin(), err)
			SnapshotRefreshTotal.WithLabelValues(collection, resultError).Inc()
			return fmt.Errorf("refresh %s: %w", collection, err)
		}
		if !ready {
			SnapshotRefreshTotal.WithLabelValues(collection, resultSkipped).Inc()
			return nil
		}
	}

	gen := o.store.Begin()
	orders, err := o.fetch(ctxWithTimeout)
	if err != nil {
		result := resultError
		if !o.store.Fail(gen, err) {
			result = resultStale
		}
		SnapshotRefreshTotal.WithLabelValues(collection, result).Inc()
		return fmt.Errorf("refresh %s: %w", collection, err)
	}

	if !o.store.Apply(gen, orders) {
		SnapshotRefreshTotal.WithLabelValues(collection, resultStale).Inc()
		o.log.Debug("stale snapshot discarded",
			logger.NewField("collection", collection),
			logger.NewField("generation", gen),
		)
		return nil
	}

	SnapshotRefreshTotal.WithLabelValues(collection, resultOK).Inc()
	return nil
}

func (o *OrdersRefresh) Info() string {
	return o.store.Collection().String() + " orders refresh"
}

func (o *OrdersRefresh) Triggers() <-chan struct{} {
	return o.triggers
}

// Trigger просит внеочередной опрос. Повторные вызовы до опроса склеиваются.
func (o *OrdersRefresh) Trigger() {
	select {
	case o.triggers <- struct{}{}:
	default:
	}
}
