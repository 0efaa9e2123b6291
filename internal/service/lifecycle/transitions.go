package lifecycle

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AlekSi/pointer"
	"partner/internal/entities"
)

const minDelayReasonLen = 5

// allowedTransitions переходы, которые инициирует сам партнёр.
// reached_* приходят извне и здесь только как текущие состояния.
var allowedTransitions = map[entities.PartnerStatus][]entities.PartnerStatus{
	entities.StatusAccepted:          {entities.StatusPickedUp},
	entities.StatusReachedRestaurant: {entities.StatusPickedUp},
	entities.StatusPickedUp:          {entities.StatusDelivered},
	entities.StatusReachedCustomer:   {entities.StatusDelivered},
}

func CanTransition(from, to entities.PartnerStatus) bool {
	if to == entities.StatusCancelledByPartner {
		return isKnownStatus(from) && !from.IsTerminal()
	}
	return slices.Contains(allowedTransitions[from], to)
}

// NextStatus единственный прямой переход из текущего состояния.
func NextStatus(from entities.PartnerStatus) (entities.PartnerStatus, bool) {
	next, ok := allowedTransitions[from]
	if !ok || len(next) == 0 {
		return "", false
	}
	return next[0], true
}

type TransitionContext struct {
	Reconciliation *entities.CashReconciliation
	Reason         string
}

type Validator struct {
	now func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// RequestTransition проверяет переход и собирает тело запроса на бэкенд.
// Локальное состояние не меняется: снапшот обновит следующий опрос.
func (v *Validator) RequestTransition(
	order entities.Order,
	target entities.PartnerStatus,
	tc TransitionContext,
) (entities.StatusUpdate, error) {
	if !CanTransition(order.PartnerStatus, target) {
		return entities.StatusUpdate{}, ErrIllegalTransition
	}

	update := entities.StatusUpdate{
		OrderID: order.ID,
		Status:  target,
	}

	switch target {
	case entities.StatusCancelledByPartner:
		reason := strings.TrimSpace(tc.Reason)
		if reason == "" {
			return entities.StatusUpdate{}, ErrReasonRequired
		}
		update.Reason = reason

	case entities.StatusDelivered:
		if !order.IsCash() {
			return update, nil
		}

		rec := tc.Reconciliation
		if rec == nil || rec.OrderID != order.ID {
			return entities.StatusUpdate{}, ErrMissingReconciliation
		}

		update.CashReceived = pointer.ToBool(true)
		update.PaymentCollected = pointer.To(rec.Collected)
		update.TipAmount = pointer.To(rec.Tip)
		if rec.HasShortfall() {
			update.ShortPayment = pointer.To(rec.Shortfall)
		}
		update.PaymentConfirmedAt = pointer.To(v.now().UTC())
	}

	return update, nil
}

// ValidateDelay проверяет причину задержки. Статус заказа не меняется.
func ValidateDelay(order entities.Order, reason string) (string, error) {
	if order.PartnerStatus.IsTerminal() {
		return "", ErrIllegalTransition
	}

	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minDelayReasonLen {
		return "", ErrReasonTooShort
	}
	return reason, nil
}

func isKnownStatus(s entities.PartnerStatus) bool {
	switch s {
	case entities.StatusAccepted,
		entities.StatusReachedRestaurant,
		entities.StatusPickedUp,
		entities.StatusReachedCustomer,
		entities.StatusDelivered,
		entities.StatusCancelledByPartner,
		entities.StatusFailed:
		return true
	default:
		return false
	}
}
