//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geolocation_test
package geolocation

import (
	"context"

	"partner/internal/entities"
	"partner/pkg/logger"
)

// Source источник координат устройства. Next блокируется до следующего
// свежего замера, закэшированные позиции не возвращаются.
type Source interface {
	Next(ctx context.Context) (entities.Coordinates, error)
}

type Refresher interface {
	Trigger()
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
