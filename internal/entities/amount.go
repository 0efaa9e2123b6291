package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces точность денежных сумм.
const AmountPlaces = 2

// maxAmount верхняя граница суммы из ввода.
var maxAmount = decimal.New(1, 12)

// ParseAmount разбирает сумму из пользовательского ввода. Экспоненциальная
// запись не принимается, модуль суммы меньше maxAmount. Знак проверяет
// вызывающий.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "eE") {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, false
	}

	return amount.Round(AmountPlaces), true
}
