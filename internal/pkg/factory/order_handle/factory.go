package order_handle

import (
	"context"
	"fmt"

	"partner/internal/entities"
	"partner/internal/service/order"
)

type Refresher interface {
	Trigger()
}

// EventHandlerFactory сопоставляет событию нужные обновления снапшотов.
type EventHandlerFactory struct {
	active Refresher
	nearby Refresher
}

func NewEventHandlerFactory(active, nearby Refresher) *EventHandlerFactory {
	return &EventHandlerFactory{
		active: active,
		nearby: nearby,
	}
}

func (f *EventHandlerFactory) GetHandler(event entities.EventType) (order.ExecuteFn, error) {
	switch event {
	case entities.EventOrderAssigned:
		return f.assignedHandler, nil
	case entities.EventOrderStatusUpdated:
		return f.statusUpdatedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedEvent, event)
	}
}

// assignedHandler назначенный заказ пропадает из пула и появляется в активных.
func (f *EventHandlerFactory) assignedHandler(_ context.Context, _ entities.OrderEvent) error {
	f.active.Trigger()
	f.nearby.Trigger()
	return nil
}

func (f *EventHandlerFactory) statusUpdatedHandler(_ context.Context, _ entities.OrderEvent) error {
	f.active.Trigger()
	return nil
}
