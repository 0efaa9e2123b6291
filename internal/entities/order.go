package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 string
	DisplayOrderID     string
	RestaurantName     string
	RestaurantAddress  Place
	DeliveryAddress    DeliveryAddress
	Total              decimal.Decimal
	PaymentMethod      PaymentMethod
	PartnerStatus      PartnerStatus
	OrderStatus        string
	CancellationReason string
	CancelledBy        string
	CancelledAt        *time.Time
	CashReceived       bool
	PaymentCollected   *decimal.Decimal
	TipAmount          *decimal.Decimal
	ShortPayment       *decimal.Decimal
	DistanceKm         *float64
	Milestones         Milestones
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsCash заказ оплачивается наличными при получении.
func (o Order) IsCash() bool {
	return o.PaymentMethod.IsCash()
}

type Place struct {
	Address     string
	Coordinates *Coordinates
}

type Coordinates struct {
	Lat float64
	Lng float64
}

type DeliveryAddress struct {
	Name     string
	Address  string
	City     string
	Landmark string
	Phone    string
}

type Milestones struct {
	AssignedAt          *time.Time
	ReachedRestaurantAt *time.Time
	PickedUpAt          *time.Time
	ReachedCustomerAt   *time.Time
	DeliveredAt         *time.Time
}

type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "cash"
	PaymentCOD            PaymentMethod = "cod"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// IsCash все, что не наличные, считается предоплатой.
func (m PaymentMethod) IsCash() bool {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(string(m)))) {
	case PaymentCash, PaymentCOD, PaymentCashOnDelivery:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

type PartnerStatus string

const (
	StatusAccepted           PartnerStatus = "accepted"
	StatusReachedRestaurant  PartnerStatus = "reached_restaurant"
	StatusPickedUp           PartnerStatus = "picked_up"
	StatusReachedCustomer    PartnerStatus = "reached_customer"
	StatusDelivered          PartnerStatus = "delivered"
	StatusCancelledByPartner PartnerStatus = "cancelled_by_partner"
	StatusFailed             PartnerStatus = "failed"
)

func (s PartnerStatus) String() string {
	return string(s)
}

func (s PartnerStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelledByPartner, StatusFailed:
		return true
	default:
		return false
	}
}

// CashReconciliation итог сверки наличных. Tip и Shortfall не бывают
// ненулевыми одновременно.
type CashReconciliation struct {
	OrderID   string
	Collected decimal.Decimal
	Due       decimal.Decimal
	Tip       decimal.Decimal
	Shortfall decimal.Decimal
}

func (r CashReconciliation) HasShortfall() bool {
	return r.Shortfall.IsPositive()
}

// StatusUpdate тело запроса смены статуса на бэкенд.
type StatusUpdate struct {
	OrderID            string
	Status             PartnerStatus
	CashReceived       *bool
	PaymentCollected   *decimal.Decimal
	TipAmount          *decimal.Decimal
	ShortPayment       *decimal.Decimal
	PaymentConfirmedAt *time.Time
	Reason             string
}

// Collection имя поддерживаемого агентом списка заказов.
type Collection string

const (
	CollectionActive  Collection = "active"
	CollectionHistory Collection = "history"
	CollectionNearby  Collection = "nearby"
)

func (c Collection) String() string {
	return string(c)
}

// Snapshot последнее применённое состояние коллекции.
type Snapshot struct {
	Orders      []Order
	Err         error
	RefreshedAt time.Time
	Generation  uint64
}

// Session состояние входа партнёра.
type Session struct {
	PartnerID string
	LoggedIn  bool
}
