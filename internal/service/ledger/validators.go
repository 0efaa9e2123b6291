package ledger

import (
	"strings"
	"time"

	"partner/internal/entities"
)

// maxRange самый длинный период выборки журнала.
const maxRange = 92 * 24 * time.Hour

func isValidEntry(e entities.CashLedgerEntry) bool {
	if strings.TrimSpace(e.OrderID) == "" || e.ConfirmedAt.IsZero() {
		return false
	}
	if e.Due.IsNegative() || e.Collected.IsNegative() || e.Tip.IsNegative() || e.Shortfall.IsNegative() {
		return false
	}
	// чаевые и недостача взаимоисключающие
	if e.Tip.IsPositive() && e.Shortfall.IsPositive() {
		return false
	}
	return e.Collected.Sub(e.Due).Equal(e.Tip.Sub(e.Shortfall))
}

func isValidRange(from, to time.Time) bool {
	return !from.IsZero() && !to.IsZero() && to.After(from) && to.Sub(from) <= maxRange
}
