package backend

import (
	"encoding/json"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"
	"partner/internal/entities"
)

func toDomain(o *orderDTO) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:                 o.ID,
		DisplayOrderID:     o.OrderID,
		RestaurantName:     o.RestaurantName,
		Total:              decimalOrZero(o.Total),
		PaymentMethod:      entities.PaymentMethod(o.PaymentMethod),
		PartnerStatus:      entities.PartnerStatus(o.DeliveryPartnerStatus),
		OrderStatus:        o.OrderStatus,
		CancellationReason: o.CancellationReason,
		CancelledBy:        o.CancelledBy,
		CancelledAt:        o.CancelledAt,
		CashReceived:       o.CashReceived,
		PaymentCollected:   decimalPtr(o.PaymentCollected),
		TipAmount:          decimalPtr(o.TipAmount),
		ShortPayment:       decimalPtr(o.ShortPayment),
		DistanceKm:         o.DistanceKm,
		CreatedAt:          timeOrZero(o.CreatedAt),
		UpdatedAt:          timeOrZero(o.UpdatedAt),
	}
	if order.DisplayOrderID == "" {
		order.DisplayOrderID = o.ID
	}

	if o.RestaurantAddress != nil {
		order.RestaurantAddress.Address = o.RestaurantAddress.Address
		if o.RestaurantAddress.Lat != nil && o.RestaurantAddress.Lng != nil {
			order.RestaurantAddress.Coordinates = &entities.Coordinates{
				Lat: *o.RestaurantAddress.Lat,
				Lng: *o.RestaurantAddress.Lng,
			}
		}
	}

	if a := o.SelectedAddress; a != nil {
		order.DeliveryAddress = entities.DeliveryAddress{
			Name:     a.Name,
			Address:  a.Address,
			City:     a.City,
			Landmark: a.Landmark,
			Phone:    a.Phone,
		}
	}

	if d := o.Delivery; d != nil {
		order.Milestones = entities.Milestones{
			AssignedAt:          d.AssignedAt,
			ReachedRestaurantAt: d.ReachedRestaurantAt,
			PickedUpAt:          d.PickedUpAt,
			ReachedCustomerAt:   d.ReachedCustomerAt,
			DeliveredAt:         d.DeliveredAt,
		}
	}

	return order
}

func toDomainList(list orderListDTO) []entities.Order {
	if len(list) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, 0, len(list))
	for i := range list {
		result = append(result, *toDomain(&list[i]))
	}
	return result
}

func fromDomainStatus(u entities.StatusUpdate) statusRequest {
	req := statusRequest{
		Status:             u.Status.String(),
		CashReceived:       u.CashReceived,
		PaymentCollected:   money(u.PaymentCollected),
		TipAmount:          money(u.TipAmount),
		ShortPayment:       money(u.ShortPayment),
		PaymentConfirmedAt: u.PaymentConfirmedAt,
	}
	return req
}

// money сумма уходит числом с двумя знаками после запятой.
func money(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	return pointer.To(moneyNumber(*d))
}

func moneyNumber(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func decimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return pointer.To(d.Decimal)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
