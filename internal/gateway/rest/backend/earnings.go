package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"partner/internal/entities"
)

const earningsFallback = "Could not load data. Please try again."

func (g *Gateway) TodayEarnings(ctx context.Context) (decimal.Decimal, int, error) {
	var resp todayEarningsDTO
	err := g.do(ctx, call{
		op:       "TodayEarnings",
		fallback: earningsFallback,
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/earnings/today",
	}, &resp)
	if err != nil {
		return decimal.Zero, 0, err
	}
	return decimalOrZero(resp.TodayEarnings), resp.CompletedDeliveries, nil
}

func (g *Gateway) TotalEarnings(ctx context.Context) (decimal.Decimal, error) {
	var resp totalEarningsDTO
	err := g.do(ctx, call{
		op:       "TotalEarnings",
		fallback: earningsFallback,
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/earnings/total",
	}, &resp)
	if err != nil {
		return decimal.Zero, err
	}
	return decimalOrZero(resp.TotalEarnings), nil
}

func (g *Gateway) MonthEarnings(ctx context.Context) (decimal.Decimal, error) {
	var resp monthEarningsDTO
	err := g.do(ctx, call{
		op:       "MonthEarnings",
		fallback: earningsFallback,
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/earnings/month",
	}, &resp)
	if err != nil {
		return decimal.Zero, err
	}
	return decimalOrZero(resp.MonthlyEarnings), nil
}

func (g *Gateway) RecentEarnings(ctx context.Context, days int) ([]entities.DailyEarning, error) {
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))

	var resp recentEarningsDTO
	err := g.do(ctx, call{
		op:       "RecentEarnings",
		fallback: earningsFallback,
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/earnings/recent",
		query:    query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := make([]entities.DailyEarning, 0, len(resp.Recent))
	for _, day := range resp.Recent {
		result = append(result, entities.DailyEarning{
			Date:   day.Date,
			Amount: decimalOrZero(day.Amount),
		})
	}
	return result, nil
}

func (g *Gateway) Payouts(ctx context.Context) (*entities.Payouts, error) {
	var resp payoutsDTO
	err := g.do(ctx, call{
		op:       "Payouts",
		fallback: earningsFallback,
		method:   http.MethodGet,
		path:     "/delivery-partner/payout/requests",
	}, &resp)
	if err != nil {
		return nil, err
	}

	payouts := &entities.Payouts{
		Requests:       make([]entities.PayoutRequest, 0, len(resp.Requests)),
		PendingBalance: decimalOrZero(resp.PendingBalance),
	}
	for _, r := range resp.Requests {
		payouts.Requests = append(payouts.Requests, entities.PayoutRequest{
			ID:          r.ID,
			Amount:      decimalOrZero(r.Amount),
			Status:      entities.PayoutStatus(r.Status),
			RequestedAt: timeOrZero(r.RequestedAt),
		})
	}
	return payouts, nil
}

// RequestPayout возвращает сообщение бэкенда для партнёра.
func (g *Gateway) RequestPayout(ctx context.Context, amount decimal.Decimal) (string, error) {
	var resp messageDTO
	err := g.do(ctx, call{
		op:       "RequestPayout",
		fallback: "Failed to submit withdrawal request. Please try again.",
		method:   http.MethodPost,
		path:     "/delivery-partner/payout/requests",
		body:     payoutRequest{Amount: moneyNumber(amount)},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Message == "" {
		return "Withdrawal request submitted successfully!", nil
	}
	return resp.Message, nil
}

func (g *Gateway) OnlineStatus(ctx context.Context) (bool, error) {
	var resp onlineStatusDTO
	err := g.do(ctx, call{
		op:       "OnlineStatus",
		fallback: "Failed to load online status",
		method:   http.MethodGet,
		path:     "/delivery-partner/orders/status",
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Status.OnlineStatus, nil
}

func (g *Gateway) SetAvailability(ctx context.Context, online bool) error {
	return g.do(ctx, call{
		op:       "SetAvailability",
		fallback: "Failed to update status. Please try again.",
		method:   http.MethodPatch,
		path:     "/delivery-partner/orders/availability",
		body:     availabilityRequest{IsOnline: online},
	}, nil)
}
