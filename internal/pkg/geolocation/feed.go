package geolocation

import (
	"context"
	"errors"
	"math"
	"sync"

	"partner/internal/entities"
	"partner/pkg/logger"
)

// Feed подписка на координаты партнёра. Каждый замер запускает обновление
// заказов рядом. Ошибка источника остаётся до повторной подписки.
type Feed struct {
	source Source
	log    handlerLogger

	mu     sync.RWMutex
	last   *entities.Coordinates
	err    error
	cancel context.CancelFunc
	done   chan struct{}
}

func NewFeed(source Source, log handlerLogger) *Feed {
	return &Feed{
		source: source,
		log:    log,
	}
}

// Subscribe запускает чтение замеров, refresher дёргается после каждого
// замера и при ошибке. Предыдущая подписка останавливается, ошибка сбрасывается.
func (f *Feed) Subscribe(ctx context.Context, refresher Refresher) {
	f.Unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	f.mu.Lock()
	f.err = nil
	f.cancel = cancel
	f.done = done
	f.mu.Unlock()

	go f.watch(ctx, refresher, done)
}

// Unsubscribe останавливает чтение и ждёт выхода горутины.
func (f *Feed) Unsubscribe() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Position последняя известная позиция. false означает, что замеров ещё не было.
func (f *Feed) Position() (entities.Coordinates, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.err != nil {
		return entities.Coordinates{}, false, f.err
	}
	if f.last == nil {
		return entities.Coordinates{}, false, nil
	}
	return *f.last, true, nil
}

func (f *Feed) watch(ctx context.Context, refresher Refresher, done chan struct{}) {
	defer close(done)

	for {
		pos, err := f.source.Next(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			f.fail(err, refresher)
			return
		}
		if err := validate(pos); err != nil {
			f.fail(err, refresher)
			return
		}

		f.mu.Lock()
		f.last = &pos
		f.mu.Unlock()

		f.log.Debug("position updated",
			logger.NewField("lat", pos.Lat),
			logger.NewField("lng", pos.Lng),
		)
		refresher.Trigger()
	}
}

func (f *Feed) fail(err error, refresher Refresher) {
	f.mu.Lock()
	f.err = err
	f.last = nil
	f.mu.Unlock()

	// выключенный доступ к геолокации ожидаемый сценарий
	if errors.Is(err, ErrPermissionDenied) {
		f.log.Warn("geolocation stopped", logger.NewField("error", err))
	} else {
		f.log.Error("geolocation stopped", logger.NewField("error", err))
	}

	// пул рядом поднимает признак ошибки, последний снимок остаётся
	refresher.Trigger()
}

func validate(pos entities.Coordinates) error {
	if math.IsNaN(pos.Lat) || math.IsNaN(pos.Lng) {
		return ErrInvalidCoordinates
	}
	if pos.Lat < -90 || pos.Lat > 90 || pos.Lng < -180 || pos.Lng > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
