package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EarningsSummary struct {
	Today               decimal.Decimal
	CompletedDeliveries int
	Week                decimal.Decimal
	Month               decimal.Decimal
	Total               decimal.Decimal
	PendingBalance      decimal.Decimal
	Recent              []DailyEarning
}

type DailyEarning struct {
	Date   string
	Amount decimal.Decimal
}

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutRejected PayoutStatus = "rejected"
	PayoutPaid     PayoutStatus = "paid"
)

type PayoutRequest struct {
	ID          string
	Amount      decimal.Decimal
	Status      PayoutStatus
	RequestedAt time.Time
}

type Payouts struct {
	Requests       []PayoutRequest
	PendingBalance decimal.Decimal
}

type Availability struct {
	Online      bool
	OnlineSince *time.Time
}
