package earnings

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"partner/internal/entities"
	"partner/internal/pkg/prompt"
	"partner/pkg/logger"
)

// recentDays окно для недельного заработка.
const recentDays = 7

type Service struct {
	gateway Gateway
	log     handlerLogger
}

func New(gateway Gateway, log handlerLogger) *Service {
	return &Service{
		gateway: gateway,
		log:     log,
	}
}

// Summary собирает сводку параллельными запросами. Ошибка любого из них
// отменяет остальные.
func (s *Service) Summary(ctx context.Context) (*entities.EarningsSummary, error) {
	var summary entities.EarningsSummary

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		today, completed, err := s.gateway.TodayEarnings(gctx)
		if err != nil {
			return fmt.Errorf("today earnings: %w", err)
		}
		summary.Today = today
		summary.CompletedDeliveries = completed
		return nil
	})

	g.Go(func() error {
		total, err := s.gateway.TotalEarnings(gctx)
		if err != nil {
			return fmt.Errorf("total earnings: %w", err)
		}
		summary.Total = total
		return nil
	})

	g.Go(func() error {
		month, err := s.gateway.MonthEarnings(gctx)
		if err != nil {
			return fmt.Errorf("month earnings: %w", err)
		}
		summary.Month = month
		return nil
	})

	g.Go(func() error {
		recent, err := s.gateway.RecentEarnings(gctx, recentDays)
		if err != nil {
			return fmt.Errorf("recent earnings: %w", err)
		}
		summary.Recent = recent
		summary.Week = sumDays(recent)
		return nil
	})

	g.Go(func() error {
		payouts, err := s.gateway.Payouts(gctx)
		if err != nil {
			return fmt.Errorf("payouts: %w", err)
		}
		summary.PendingBalance = payouts.PendingBalance
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (s *Service) Payouts(ctx context.Context) (*entities.Payouts, error) {
	payouts, err := s.gateway.Payouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("payouts: %w", err)
	}
	return payouts, nil
}

// RequestPayout заявка на вывод. Пустая сумма означает весь заработок.
// Возвращает сообщение бэкенда.
func (s *Service) RequestPayout(ctx context.Context, rawAmount string, confirmer prompt.Confirmer) (string, error) {
	total, err := s.gateway.TotalEarnings(ctx)
	if err != nil {
		return "", fmt.Errorf("total earnings: %w", err)
	}

	amount := total.Round(entities.AmountPlaces)
	if strings.TrimSpace(rawAmount) != "" {
		var ok bool
		if amount, ok = entities.ParseAmount(rawAmount); !ok {
			return "", ErrInvalidAmount
		}
	}

	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}
	if amount.GreaterThan(total) {
		return "", ErrExceedsEarnings
	}

	if !confirmer.Confirm(ctx, payoutPrompt(amount)) {
		return "", ErrDeclined
	}

	msg, err := s.gateway.RequestPayout(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("request payout: %w", err)
	}

	s.log.Info("payout requested", logger.NewField("amount", amount.StringFixed(2)))

	return msg, nil
}

func sumDays(days []entities.DailyEarning) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range days {
		sum = sum.Add(d.Amount)
	}
	return sum
}

func payoutPrompt(amount decimal.Decimal) prompt.Prompt {
	return prompt.Prompt{
		Kind:    prompt.KindPayout,
		Message: fmt.Sprintf("Request withdrawal of ₹%s?", amount.StringFixed(2)),
	}
}
