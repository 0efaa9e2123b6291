package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"partner/internal/entities"
)

func orderPath(orderID, action string) string {
	p := "/delivery-partner/orders/" + url.PathEscape(orderID)
	if action != "" {
		p += "/" + action
	}
	return p
}

func (g *Gateway) ActiveOrders(ctx context.Context) ([]entities.Order, error) {
	var resp orderListDTO
	err := g.do(ctx, call{
		op:       "ActiveOrders",
		fallback: "Could not load active orders",
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/my-active",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return toDomainList(resp), nil
}

func (g *Gateway) History(ctx context.Context) ([]entities.Order, error) {
	var resp orderListDTO
	err := g.do(ctx, call{
		op:       "History",
		fallback: "Could not load your order history. Please try again.",
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/history",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return toDomainList(resp), nil
}

// Nearby фильтрация по расстоянию на стороне бэкенда.
func (g *Gateway) Nearby(ctx context.Context, at entities.Coordinates) ([]entities.Order, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(at.Lng, 'f', -1, 64))

	var resp orderListDTO
	err := g.do(ctx, call{
		op:       "Nearby",
		fallback: "Failed to fetch nearby orders",
		method:   http.MethodGet,
		path:     "/food/order/available-orders",
		query:    query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return toDomainList(resp), nil
}

func (g *Gateway) Order(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp orderDTO
	err := g.do(ctx, call{
		op:       "Order",
		fallback: "Failed to load order details",
		method:   http.MethodGet,
		path:     orderPath(orderID, ""),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return toDomain(&resp), nil
}

func (g *Gateway) Accept(ctx context.Context, orderID string) error {
	return g.result(ctx, call{
		op:       "Accept",
		fallback: "Failed to accept order",
		method:   http.MethodPost,
		path:     orderPath(orderID, "accept"),
	})
}

func (g *Gateway) Reject(ctx context.Context, orderID string) error {
	return g.result(ctx, call{
		op:       "Reject",
		fallback: "Failed to reject order",
		method:   http.MethodPost,
		path:     orderPath(orderID, "reject"),
	})
}

// UpdateStatus бэкенд отвечает обновлённым заказом. Пустой ответ не ошибка,
// новое состояние придёт со следующим опросом.
func (g *Gateway) UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error) {
	fallback := "Failed to update status"
	if update.Status == entities.StatusDelivered {
		fallback = "Failed to mark delivered"
		if update.CashReceived != nil {
			fallback = "Failed to confirm delivery & cash"
		}
	}

	var resp orderDTO
	err := g.do(ctx, call{
		op:       "UpdateStatus",
		fallback: fallback,
		method:   http.MethodPatch,
		path:     orderPath(update.OrderID, "status"),
		body:     fromDomainStatus(update),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, nil
	}
	return toDomain(&resp), nil
}

func (g *Gateway) CancelOrder(ctx context.Context, orderID, reason string) error {
	return g.result(ctx, call{
		op:       "CancelOrder",
		fallback: "Failed to cancel order",
		method:   http.MethodPost,
		path:     orderPath(orderID, "cancel"),
		body:     reasonRequest{Reason: reason},
	})
}

func (g *Gateway) ReportDelay(ctx context.Context, orderID, reason string) error {
	return g.result(ctx, call{
		op:       "ReportDelay",
		fallback: "Failed to report delay",
		method:   http.MethodPatch,
		path:     orderPath(orderID, "report-delay"),
		body:     reasonRequest{Reason: reason},
	})
}

// result вызовы с ответом {success, error?}. success=false это отказ бэкенда.
func (g *Gateway) result(ctx context.Context, c call) error {
	var resp resultDTO
	if err := g.do(ctx, c, &resp); err != nil {
		return err
	}

	if resp.Success != nil && !*resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = c.fallback
		}
		return &RemoteError{Op: c.op, StatusCode: http.StatusOK, Message: msg}
	}
	return nil
}
