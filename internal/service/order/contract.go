//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type OrderGateway interface {
	Order(ctx context.Context, orderID string) (*entities.Order, error)
}

// OrderSource снапшот, в котором заказ ищется до похода на бэкенд.
type OrderSource interface {
	Find(orderID string) (entities.Order, bool)
}

type ExecuteFn func(ctx context.Context, event entities.OrderEvent) error

type HandlerFactory interface {
	GetHandler(event entities.EventType) (ExecuteFn, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
