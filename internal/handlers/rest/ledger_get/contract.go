//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_get_test
package ledger_get

import (
	"context"
	"time"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Report(ctx context.Context, from, to time.Time) (*entities.CashReport, error)
}
