package order

import (
	"encoding/json"
	"fmt"
	"strings"

	"partner/internal/entities"
)

// eventMessage формат события в kafka и в сокете.
type eventMessage struct {
	Event   string `json:"event"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func DecodeEvent(raw []byte) (entities.OrderEvent, error) {
	var msg eventMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	event := strings.TrimSpace(msg.Event)
	if event == "" {
		return entities.OrderEvent{}, fmt.Errorf("%w: event type is required", ErrMalformedEvent)
	}

	return entities.OrderEvent{
		Type:    entities.EventType(event),
		OrderID: strings.TrimSpace(msg.OrderID),
		Status:  entities.PartnerStatus(strings.TrimSpace(msg.Status)),
	}, nil
}
