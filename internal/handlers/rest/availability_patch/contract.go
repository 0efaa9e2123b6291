//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_patch_test
package availability_patch

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
	Set(ctx context.Context, online bool) (entities.Availability, error)
}
