package ledger

import (
	"time"

	"partner/internal/entities"
)

func ToDomain(e *EntryDB) *entities.CashLedgerEntry {
	if e == nil {
		return nil
	}
	return &entities.CashLedgerEntry{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Due:         e.Due,
		Collected:   e.Collected,
		Tip:         e.Tip,
		Shortfall:   e.Shortfall,
		ConfirmedAt: e.ConfirmedAt.UTC(),
	}
}

func FromDomain(e *entities.CashLedgerEntry) *EntryDB {
	if e == nil {
		return nil
	}
	return &EntryDB{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Due:         e.Due.Round(2),
		Collected:   e.Collected.Round(2),
		Tip:         e.Tip.Round(2),
		Shortfall:   e.Shortfall.Round(2),
		ConfirmedAt: e.ConfirmedAt.UTC(),
	}
}

func ToDayDomain(d *DayDB) *entities.CashDay {
	if d == nil {
		return nil
	}
	return &entities.CashDay{
		Day:       d.Day.UTC(),
		Orders:    d.Orders,
		Collected: d.Collected,
		Tips:      d.Tips,
		Shortfall: d.Shortfall,
	}
}

// dayOf день записи в UTC.
func dayOf(e *EntryDB) string {
	return e.ConfirmedAt.UTC().Format(time.DateOnly)
}
