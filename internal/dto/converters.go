package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"partner/internal/entities"
)

func FromOrder(o entities.Order) Order {
	out := Order{
		ID:                    o.ID,
		OrderID:               o.DisplayOrderID,
		RestaurantName:        o.RestaurantName,
		RestaurantAddress:     Place{Address: o.RestaurantAddress.Address},
		Total:                 Money(o.Total),
		PaymentMethod:         o.PaymentMethod.String(),
		DeliveryPartnerStatus: o.PartnerStatus.String(),
		OrderStatus:           o.OrderStatus,
		CancellationReason:    o.CancellationReason,
		CancelledBy:           o.CancelledBy,
		CancelledAt:           o.CancelledAt,
		CashReceived:          o.CashReceived,
		PaymentCollected:      moneyPtr(o.PaymentCollected),
		TipAmount:             moneyPtr(o.TipAmount),
		ShortPayment:          moneyPtr(o.ShortPayment),
		DistanceKm:            o.DistanceKm,
		SelectedAddress: Address{
			Name:     o.DeliveryAddress.Name,
			Address:  o.DeliveryAddress.Address,
			City:     o.DeliveryAddress.City,
			Landmark: o.DeliveryAddress.Landmark,
			Phone:    o.DeliveryAddress.Phone,
		},
		Delivery: Milestones{
			AssignedAt:          o.Milestones.AssignedAt,
			ReachedRestaurantAt: o.Milestones.ReachedRestaurantAt,
			PickedUpAt:          o.Milestones.PickedUpAt,
			ReachedCustomerAt:   o.Milestones.ReachedCustomerAt,
			DeliveredAt:         o.Milestones.DeliveredAt,
		},
		CreatedAt: timePtr(o.CreatedAt),
		UpdatedAt: timePtr(o.UpdatedAt),
	}
	if c := o.RestaurantAddress.Coordinates; c != nil {
		out.RestaurantAddress.Lat = &c.Lat
		out.RestaurantAddress.Lng = &c.Lng
	}
	return out
}

func FromOrders(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromSnapshot(collection entities.Collection, s entities.Snapshot) Snapshot {
	out := Snapshot{
		Collection:  collection.String(),
		Orders:      FromOrders(s.Orders),
		RefreshedAt: timePtr(s.RefreshedAt),
	}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	return out
}

func FromEarnings(s *entities.EarningsSummary) Earnings {
	recent := make([]DailyEarnings, 0, len(s.Recent))
	for _, d := range s.Recent {
		recent = append(recent, DailyEarnings{Date: d.Date, Amount: Money(d.Amount)})
	}
	return Earnings{
		Today:               Money(s.Today),
		CompletedDeliveries: s.CompletedDeliveries,
		Week:                Money(s.Week),
		Month:               Money(s.Month),
		Total:               Money(s.Total),
		PendingBalance:      Money(s.PendingBalance),
		Recent:              recent,
	}
}

func FromPayouts(p *entities.Payouts) Payouts {
	requests := make([]Payout, 0, len(p.Requests))
	for _, r := range p.Requests {
		requests = append(requests, Payout{
			ID:          r.ID,
			Amount:      Money(r.Amount),
			Status:      string(r.Status),
			RequestedAt: timePtr(r.RequestedAt),
		})
	}
	return Payouts{
		Requests:       requests,
		PendingBalance: Money(p.PendingBalance),
	}
}

func FromAvailability(a entities.Availability) Availability {
	return Availability{
		IsOnline:    a.Online,
		OnlineSince: a.OnlineSince,
	}
}

func FromCashReport(r *entities.CashReport) Ledger {
	entries := make([]LedgerEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, LedgerEntry{
			OrderID:     e.OrderID,
			Due:         Money(e.Due),
			Collected:   Money(e.Collected),
			Tip:         Money(e.Tip),
			Shortfall:   Money(e.Shortfall),
			ConfirmedAt: e.ConfirmedAt,
		})
	}
	days := make([]CashDay, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, fromCashDay(d))
	}
	return Ledger{
		Entries: entries,
		Days:    days,
		Total:   fromCashDay(r.Total),
	}
}

func fromCashDay(d entities.CashDay) CashDay {
	out := CashDay{
		Orders:    d.Orders,
		Collected: Money(d.Collected),
		Tips:      Money(d.Tips),
		Shortfall: Money(d.Shortfall),
	}
	if !d.Day.IsZero() {
		out.Day = d.Day.Format(time.DateOnly)
	}
	return out
}

// Money сумма с двумя знаками после запятой.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func moneyPtr(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := Money(*d)
	return &n
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
