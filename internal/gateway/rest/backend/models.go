package backend

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type orderDTO struct {
	ID                    string              `json:"_id"`
	OrderID               string              `json:"orderId"`
	RestaurantName        string              `json:"restaurantName"`
	RestaurantAddress     *placeDTO           `json:"restaurantAddress"`
	SelectedAddress       *addressDTO         `json:"selectedAddress"`
	Total                 decimal.NullDecimal `json:"total"`
	PaymentMethod         string              `json:"paymentMethod"`
	DeliveryPartnerStatus string              `json:"deliveryPartnerStatus"`
	OrderStatus           string              `json:"orderStatus"`
	CancellationReason    string              `json:"cancellationReason"`
	CancelledBy           string              `json:"cancelledBy"`
	CancelledAt           *time.Time          `json:"cancelledAt"`
	CashReceived          bool                `json:"cashReceived"`
	PaymentCollected      decimal.NullDecimal `json:"paymentCollected"`
	TipAmount             decimal.NullDecimal `json:"tipAmount"`
	ShortPayment          decimal.NullDecimal `json:"shortPayment"`
	DistanceKm            *float64            `json:"distanceKm"`
	Delivery              *milestonesDTO      `json:"delivery"`
	CreatedAt             *time.Time          `json:"createdAt"`
	UpdatedAt             *time.Time          `json:"updatedAt"`
}

type placeDTO struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type addressDTO struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Landmark string `json:"landmark"`
	Phone    string `json:"phone"`
}

type milestonesDTO struct {
	AssignedAt          *time.Time `json:"assignedAt"`
	ReachedRestaurantAt *time.Time `json:"reachedRestaurantAt"`
	PickedUpAt          *time.Time `json:"pickedUpAt"`
	ReachedCustomerAt   *time.Time `json:"reachedCustomerAt"`
	DeliveredAt         *time.Time `json:"deliveredAt"`
}

// orderListDTO бэкенд иногда отвечает не массивом, такой ответ считается пустым списком.
type orderListDTO []orderDTO

func (l *orderListDTO) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*l = orderListDTO{}
		return nil
	}

	var orders []orderDTO
	if err := json.Unmarshal(trimmed, &orders); err != nil {
		return err
	}
	*l = orders
	return nil
}

type statusRequest struct {
	Status             string       `json:"status"`
	CashReceived       *bool        `json:"cashReceived,omitempty"`
	PaymentCollected   *json.Number `json:"paymentCollected,omitempty"`
	TipAmount          *json.Number `json:"tipAmount,omitempty"`
	ShortPayment       *json.Number `json:"shortPayment,omitempty"`
	PaymentConfirmedAt *time.Time   `json:"paymentConfirmedAt,omitempty"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// resultDTO ответ вида {success, error?}.
type resultDTO struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type todayEarningsDTO struct {
	TodayEarnings       decimal.NullDecimal `json:"todayEarnings"`
	CompletedDeliveries int                 `json:"completedDeliveries"`
}

type totalEarningsDTO struct {
	TotalEarnings decimal.NullDecimal `json:"totalEarnings"`
}

type monthEarningsDTO struct {
	MonthlyEarnings decimal.NullDecimal `json:"monthlyEarnings"`
}

type recentEarningsDTO struct {
	Recent []struct {
		Date   string              `json:"date"`
		Amount decimal.NullDecimal `json:"amount"`
	} `json:"recent"`
}

type payoutsDTO struct {
	Requests []struct {
		ID          string              `json:"_id"`
		Amount      decimal.NullDecimal `json:"amount"`
		Status      string              `json:"status"`
		RequestedAt *time.Time          `json:"requestedAt"`
	} `json:"requests"`
	PendingBalance decimal.NullDecimal `json:"pendingBalance"`
}

type payoutRequest struct {
	Amount json.Number `json:"amount"`
}

type messageDTO struct {
	Message string `json:"message"`
}

type onlineStatusDTO struct {
	Status struct {
		OnlineStatus bool `json:"onlineStatus"`
	} `json:"status"`
}

type availabilityRequest struct {
	IsOnline bool `json:"isOnline"`
}
