// Package dto JSON-модели локального API агента. Поля заказа повторяют
// имена бэкенда.
package dto

import (
	"encoding/json"
	"time"
)

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

type Order struct {
	ID                    string       `json:"_id"`
	OrderID               string       `json:"orderId"`
	RestaurantName        string       `json:"restaurantName"`
	RestaurantAddress     Place        `json:"restaurantAddress"`
	SelectedAddress       Address      `json:"selectedAddress"`
	Total                 json.Number  `json:"total"`
	PaymentMethod         string       `json:"paymentMethod"`
	DeliveryPartnerStatus string       `json:"deliveryPartnerStatus"`
	OrderStatus           string       `json:"orderStatus,omitempty"`
	CancellationReason    string       `json:"cancellationReason,omitempty"`
	CancelledBy           string       `json:"cancelledBy,omitempty"`
	CancelledAt           *time.Time   `json:"cancelledAt,omitempty"`
	CashReceived          bool         `json:"cashReceived"`
	PaymentCollected      *json.Number `json:"paymentCollected,omitempty"`
	TipAmount             *json.Number `json:"tipAmount,omitempty"`
	ShortPayment          *json.Number `json:"shortPayment,omitempty"`
	DistanceKm            *float64     `json:"distanceKm,omitempty"`
	Delivery              Milestones   `json:"delivery"`
	CreatedAt             *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt             *time.Time   `json:"updatedAt,omitempty"`
}

type Place struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Address struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Landmark string `json:"landmark,omitempty"`
	Phone    string `json:"phone"`
}

type Milestones struct {
	AssignedAt          *time.Time `json:"assignedAt,omitempty"`
	ReachedRestaurantAt *time.Time `json:"reachedRestaurantAt,omitempty"`
	PickedUpAt          *time.Time `json:"pickedUpAt,omitempty"`
	ReachedCustomerAt   *time.Time `json:"reachedCustomerAt,omitempty"`
	DeliveredAt         *time.Time `json:"deliveredAt,omitempty"`
}

// Snapshot коллекция заказов с признаком ошибки последнего обновления.
type Snapshot struct {
	Collection  string     `json:"collection"`
	Orders      []Order    `json:"orders"`
	Error       string     `json:"error,omitempty"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
}

type StatusUpdateRequest struct {
	Status           string `json:"status"`
	Collected        string `json:"collected"`
	ConfirmShortfall bool   `json:"confirmShortfall"`
	ConfirmDelivery  bool   `json:"confirmDelivery"`
	Confirm          bool   `json:"confirm"`
}

type ReasonRequest struct {
	Reason  string `json:"reason"`
	Confirm bool   `json:"confirm"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

type Earnings struct {
	Today               json.Number     `json:"todayEarnings"`
	CompletedDeliveries int             `json:"completedDeliveries"`
	Week                json.Number     `json:"weeklyEarnings"`
	Month               json.Number     `json:"monthlyEarnings"`
	Total               json.Number     `json:"totalEarnings"`
	PendingBalance      json.Number     `json:"pendingBalance"`
	Recent              []DailyEarnings `json:"recent"`
}

type DailyEarnings struct {
	Date   string      `json:"date"`
	Amount json.Number `json:"amount"`
}

type Payouts struct {
	Requests       []Payout    `json:"requests"`
	PendingBalance json.Number `json:"pendingBalance"`
}

type Payout struct {
	ID          string      `json:"_id"`
	Amount      json.Number `json:"amount"`
	Status      string      `json:"status"`
	RequestedAt *time.Time  `json:"requestedAt,omitempty"`
}

type PayoutRequest struct {
	Amount  string `json:"amount"`
	Confirm bool   `json:"confirm"`
}

type Availability struct {
	IsOnline    bool       `json:"isOnline"`
	OnlineSince *time.Time `json:"onlineSince,omitempty"`
}

type AvailabilityRequest struct {
	IsOnline *bool `json:"isOnline"`
}

type Ledger struct {
	Entries []LedgerEntry `json:"entries"`
	Days    []CashDay     `json:"days"`
	Total   CashDay       `json:"total"`
}

type LedgerEntry struct {
	OrderID     string      `json:"orderId"`
	Due         json.Number `json:"due"`
	Collected   json.Number `json:"collected"`
	Tip         json.Number `json:"tip"`
	Shortfall   json.Number `json:"shortfall"`
	ConfirmedAt time.Time   `json:"confirmedAt"`
}

type CashDay struct {
	Day       string      `json:"day,omitempty"`
	Orders    int         `json:"orders"`
	Collected json.Number `json:"collected"`
	Tips      json.Number `json:"tips"`
	Shortfall json.Number `json:"shortfall"`
}

type SessionRequest struct {
	Token     string `json:"token"`
	PartnerID string `json:"partnerId"`
}

type Session struct {
	PartnerID string `json:"partnerId"`
	LoggedIn  bool   `json:"loggedIn"`
}
