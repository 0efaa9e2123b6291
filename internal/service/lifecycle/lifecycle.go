package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partner/internal/entities"
	"partner/internal/pkg/prompt"
	"partner/internal/service/reconcile"
	"partner/pkg/logger"
)

// Controller ведёт активные заказы партнёра по жизненному циклу:
// проверка перехода, сверка наличных, подтверждения, запрос на бэкенд.
type Controller struct {
	validator *Validator
	gateway   Gateway
	orders    OrderSource
	ledger    CashLedger
	refresher Refresher
	log       handlerLogger
	now       func() time.Time
}

func New(
	gateway Gateway,
	orders OrderSource,
	ledger CashLedger,
	refresher Refresher,
	log handlerLogger,
) *Controller {
	return NewWithClock(gateway, orders, ledger, refresher, log, time.Now)
}

func NewWithClock(
	gateway Gateway,
	orders OrderSource,
	ledger CashLedger,
	refresher Refresher,
	log handlerLogger,
	now func() time.Time,
) *Controller {
	return &Controller{
		validator: NewValidator(now),
		gateway:   gateway,
		orders:    orders,
		ledger:    ledger,
		refresher: refresher,
		log:       log,
		now:       now,
	}
}

// Advance переводит заказ в target. Для доставки наличного заказа
// спрашивает принятую сумму и, при недостаче, отдельное подтверждение.
func (c *Controller) Advance(
	ctx context.Context,
	orderID string,
	target entities.PartnerStatus,
	confirmer prompt.Confirmer,
) (*entities.Order, error) {
	order, err := c.find(orderID)
	if err != nil {
		return nil, err
	}
	if target == entities.StatusCancelledByPartner {
		return nil, fmt.Errorf("%w: use cancel", ErrIllegalTransition)
	}
	if !CanTransition(order.PartnerStatus, target) {
		return nil, ErrIllegalTransition
	}

	tc := TransitionContext{}
	switch {
	case target == entities.StatusDelivered && order.IsCash():
		rec, err := c.collectCash(ctx, order, confirmer)
		if err != nil {
			return nil, err
		}
		tc.Reconciliation = rec

	case target == entities.StatusDelivered:
		if !confirmer.Confirm(ctx, prepaidDeliveryPrompt()) {
			return nil, ErrDeclined
		}

	default:
		if !confirmer.Confirm(ctx, statusPrompt(target)) {
			return nil, ErrDeclined
		}
	}

	update, err := c.validator.RequestTransition(order, target, tc)
	if err != nil {
		return nil, err
	}

	updated, err := c.gateway.UpdateStatus(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if tc.Reconciliation != nil {
		c.recordCash(ctx, *tc.Reconciliation, update)
	}

	c.log.Info("order status updated",
		logger.NewField("order_id", order.ID),
		logger.NewField("from", order.PartnerStatus),
		logger.NewField("to", target),
	)
	c.refresher.Trigger()

	return updated, nil
}

// Cancel отменяет заказ партнёром. Пустая причина запрашивается через confirmer,
// номер из списка заменяется текстом причины.
func (c *Controller) Cancel(
	ctx context.Context,
	orderID string,
	reason string,
	confirmer prompt.Confirmer,
) error {
	order, err := c.find(orderID)
	if err != nil {
		return err
	}
	if !CanTransition(order.PartnerStatus, entities.StatusCancelledByPartner) {
		return ErrIllegalTransition
	}

	if strings.TrimSpace(reason) == "" {
		answer, ok := confirmer.PromptText(ctx, prompt.Prompt{
			Kind:    prompt.KindCancelReason,
			Message: cancelReasonMessage(),
		}, "")
		if !ok {
			return ErrDeclined
		}
		reason = answer
	}
	reason = ResolveCancelReason(reason)

	update, err := c.validator.RequestTransition(order, entities.StatusCancelledByPartner, TransitionContext{Reason: reason})
	if err != nil {
		return err
	}

	if !confirmer.Confirm(ctx, cancelPrompt(update.Reason)) {
		return ErrDeclined
	}

	if err := c.gateway.CancelOrder(ctx, update.OrderID, update.Reason); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	c.log.Info("order cancelled by partner",
		logger.NewField("order_id", order.ID),
		logger.NewField("reason", update.Reason),
	)
	c.refresher.Trigger()

	return nil
}

// ReportDelay помечает задержку доставки. Статус заказа не меняется.
func (c *Controller) ReportDelay(
	ctx context.Context,
	orderID string,
	reason string,
	confirmer prompt.Confirmer,
) error {
	order, err := c.find(orderID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(reason) == "" {
		answer, ok := confirmer.PromptText(ctx, delayReasonPrompt(), "")
		if !ok {
			return ErrDeclined
		}
		reason = answer
	}

	reason, err = ValidateDelay(order, reason)
	if err != nil {
		return err
	}

	if !confirmer.Confirm(ctx, delayPrompt()) {
		return ErrDeclined
	}

	if err := c.gateway.ReportDelay(ctx, order.ID, reason); err != nil {
		return fmt.Errorf("report delay: %w", err)
	}

	c.log.Info("delay reported",
		logger.NewField("order_id", order.ID),
	)
	c.refresher.Trigger()

	return nil
}

func (c *Controller) collectCash(
	ctx context.Context,
	order entities.Order,
	confirmer prompt.Confirmer,
) (*entities.CashReconciliation, error) {
	due := order.Total.Round(2)

	collected, ok := confirmer.PromptText(ctx, collectedPrompt(due), due.StringFixed(2))
	if !ok {
		return nil, ErrDeclined
	}

	rec, err := reconcile.Reconcile(order, collected)
	if err != nil {
		return nil, err
	}

	if rec.HasShortfall() && !confirmer.Confirm(ctx, shortfallPrompt(rec.Shortfall)) {
		return nil, ErrDeclined
	}
	if !confirmer.Confirm(ctx, cashDeliveryPrompt(rec)) {
		return nil, ErrDeclined
	}

	return &rec, nil
}

// recordCash ошибка журнала не отменяет уже подтверждённую бэкендом доставку.
func (c *Controller) recordCash(ctx context.Context, rec entities.CashReconciliation, update entities.StatusUpdate) {
	confirmedAt := c.now().UTC()
	if update.PaymentConfirmedAt != nil {
		confirmedAt = *update.PaymentConfirmedAt
	}

	err := c.ledger.Record(ctx, entities.CashLedgerEntry{
		OrderID:     rec.OrderID,
		Due:         rec.Due,
		Collected:   rec.Collected,
		Tip:         rec.Tip,
		Shortfall:   rec.Shortfall,
		ConfirmedAt: confirmedAt,
	})
	if err != nil {
		c.log.Error("failed to record cash in ledger",
			logger.NewField("order_id", rec.OrderID),
			logger.NewField("error", err),
		)
	}
}

func (c *Controller) find(orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, ok := c.orders.Find(orderID)
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
