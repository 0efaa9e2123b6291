//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_test
package earnings

import (
	"context"

	"github.com/shopspring/decimal"
	"partner/internal/entities"
	"partner/pkg/logger"
)

type Gateway interface {
	TodayEarnings(ctx context.Context) (decimal.Decimal, int, error)
	TotalEarnings(ctx context.Context) (decimal.Decimal, error)
	MonthEarnings(ctx context.Context) (decimal.Decimal, error)
	RecentEarnings(ctx context.Context, days int) ([]entities.DailyEarning, error)
	Payouts(ctx context.Context) (*entities.Payouts, error)
	RequestPayout(ctx context.Context, amount decimal.Decimal) (string, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
