//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payouts_get_test
package payouts_get

import (
	"context"

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
	Payouts(ctx context.Context) (*entities.Payouts, error)
}
