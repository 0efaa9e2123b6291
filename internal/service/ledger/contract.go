//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"
	"time"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type Repository interface {
	Insert(ctx context.Context, entry entities.CashLedgerEntry) (int64, error)
	AddToDay(ctx context.Context, entry entities.CashLedgerEntry) error
	List(ctx context.Context, from, to time.Time) ([]entities.CashLedgerEntry, error)
	Days(ctx context.Context, from, to time.Time) ([]entities.CashDay, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
