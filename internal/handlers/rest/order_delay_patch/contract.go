//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_delay_patch_test
package order_delay_patch

import (
	"context"

	"partner/internal/pkg/prompt"
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
	ReportDelay(ctx context.Context, orderID, reason string, confirmer prompt.Confirmer) error
}
