package reconcile

import (
	"github.com/shopspring/decimal"
	"partner/internal/entities"
)

// Reconcile сверяет принятые наличные с суммой заказа.
// Переплата целиком уходит в чаевые, недостача только фиксируется:
// решение продолжать доставку принимает вызывающий.
func Reconcile(order entities.Order, collectedAmount string) (entities.CashReconciliation, error) {
	if !order.IsCash() {
		return entities.CashReconciliation{}, ErrNotCashOrder
	}

	collected, err := ParseAmount(collectedAmount)
	if err != nil {
		return entities.CashReconciliation{}, err
	}

	due := order.Total.Round(entities.AmountPlaces)
	diff := collected.Sub(due)

	result := entities.CashReconciliation{
		OrderID:   order.ID,
		Collected: collected,
		Due:       due,
		Tip:       decimal.Zero,
		Shortfall: decimal.Zero,
	}
	switch {
	case diff.IsPositive():
		result.Tip = diff
	case diff.IsNegative():
		result.Shortfall = diff.Neg()
	}

	return result, nil
}

// ParseAmount разбирает денежную сумму из пользовательского ввода.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, ok := entities.ParseAmount(raw)
	if !ok || amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}
