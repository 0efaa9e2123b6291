package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryDB struct {
	ID          int64
	OrderID     string
	Due         decimal.Decimal
	Collected   decimal.Decimal
	Tip         decimal.Decimal
	Shortfall   decimal.Decimal
	ConfirmedAt time.Time
}

type DayDB struct {
	Day       time.Time
	Orders    int
	Collected decimal.Decimal
	Tips      decimal.Decimal
	Shortfall decimal.Decimal
}
