package entities

type EventType string

const (
	EventOrderAssigned      EventType = "orderAssigned"
	EventOrderStatusUpdated EventType = "orderStatusUpdated"
)

func (e EventType) String() string {
	return string(e)
}

// OrderEvent событие реального времени от платформы. Полное состояние
// заказа в событии не передаётся, его приносит следующий опрос.
type OrderEvent struct {
	Type    EventType
	OrderID string
	Status  PartnerStatus
}
