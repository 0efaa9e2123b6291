package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type Service struct {
	orderGateway  OrderGateway
	sources       []OrderSource
	eventsFactory HandlerFactory
	log           handlerLogger
}

func New(orderGateway OrderGateway, eventsFactory HandlerFactory, log handlerLogger, sources ...OrderSource) *Service {
	return &Service{
		orderGateway:  orderGateway,
		sources:       sources,
		eventsFactory: eventsFactory,
		log:           log,
	}
}

// ProcessEvent реагирует на событие реального времени. Неизвестные события
// пропускаются.
func (s *Service) ProcessEvent(ctx context.Context, event entities.OrderEvent) error {
	if event.Type == "" {
		return fmt.Errorf("%w: event type is required", ErrMalformedEvent)
	}

	executeFn, err := s.eventsFactory.GetHandler(event.Type)
	if err != nil {
		if errors.Is(err, ErrUndefinedEvent) {
			s.log.Debug("order event skipped", logger.NewField("event", event.Type))
			return nil
		}
		return err
	}

	if err := executeFn(ctx, event); err != nil {
		return fmt.Errorf("handle %s: %w", event.Type, err)
	}

	return nil
}

// Detail карточка заказа. Сначала смотрим в снапшоты, потом на бэкенд.
func (s *Service) Detail(ctx context.Context, orderID string) (*entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	for _, source := range s.sources {
		if order, ok := source.Find(orderID); ok {
			return &order, nil
		}
	}

	order, err := s.orderGateway.Order(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order from backend: %w", err)
	}
	if order == nil || order.ID == "" {
		return nil, ErrOrderNotFound
	}

	return order, nil
}
