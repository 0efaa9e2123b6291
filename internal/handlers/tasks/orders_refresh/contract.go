//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_refresh_test
package orders_refresh

import (
	"context"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type Store interface {
	Collection() entities.Collection
	Begin() uint64
	Apply(gen uint64, orders []entities.Order) bool
	Fail(gen uint64, err error) bool
}

type Gateway interface {
	ActiveOrders(ctx context.Context) ([]entities.Order, error)
	History(ctx context.Context) ([]entities.Order, error)
	Nearby(ctx context.Context, at entities.Coordinates) ([]entities.Order, error)
}

// Locator последняя известная позиция партнёра.
type Locator interface {
	Position() (entities.Coordinates, bool, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
