//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_get_test
package earnings_get

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
	Summary(ctx context.Context) (*entities.EarningsSummary, error)
}
