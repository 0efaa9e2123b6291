package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashLedgerEntry наличные, принятые партнёром по одному заказу.
type CashLedgerEntry struct {
	ID          int64
	OrderID     string
	Due         decimal.Decimal
	Collected   decimal.Decimal
	Tip         decimal.Decimal
	Shortfall   decimal.Decimal
	ConfirmedAt time.Time
}

// CashDay сумма наличных на руках за день.
type CashDay struct {
	Day       time.Time
	Orders    int
	Collected decimal.Decimal
	Tips      decimal.Decimal
	Shortfall decimal.Decimal
}

// CashReport журнал и итоги за период.
type CashReport struct {
	Entries []CashLedgerEntry
	Days    []CashDay
	Total   CashDay
}
