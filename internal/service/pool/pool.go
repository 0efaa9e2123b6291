package pool

import (
	"context"
	"fmt"
	"strings"

	"partner/internal/pkg/prompt"
	"partner/pkg/logger"
)

// Service операции над пулом свободных заказов рядом с партнёром.
type Service struct {
	gateway Gateway
	nearby  Refresher
	active  Refresher
	log     handlerLogger
}

func New(gateway Gateway, nearby, active Refresher, log handlerLogger) *Service {
	return &Service{
		gateway: gateway,
		nearby:  nearby,
		active:  active,
		log:     log,
	}
}

// Accept забирает заказ из пула. После успеха обновляются и пул, и активные заказы.
func (s *Service) Accept(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}

	if err := s.gateway.Accept(ctx, orderID); err != nil {
		return fmt.Errorf("accept order: %w", err)
	}

	s.log.Info("order accepted", logger.NewField("order_id", orderID))
	s.nearby.Trigger()
	s.active.Trigger()

	return nil
}

func (s *Service) Reject(ctx context.Context, orderID string, confirmer prompt.Confirmer) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}

	if !confirmer.Confirm(ctx, rejectPrompt()) {
		return ErrDeclined
	}

	if err := s.gateway.Reject(ctx, orderID); err != nil {
		return fmt.Errorf("reject order: %w", err)
	}

	s.log.Info("order rejected", logger.NewField("order_id", orderID))
	s.nearby.Trigger()

	return nil
}

func rejectPrompt() prompt.Prompt {
	return prompt.Prompt{
		Kind:    prompt.KindReject,
		Message: "Are you sure you want to reject this order?",
	}
}
