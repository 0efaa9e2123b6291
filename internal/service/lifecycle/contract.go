//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type Gateway interface {
	UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) error
	ReportDelay(ctx context.Context, orderID, reason string) error
}

// OrderSource снапшот активных заказов.
type OrderSource interface {
	Find(orderID string) (entities.Order, bool)
}

type CashLedger interface {
	Record(ctx context.Context, entry entities.CashLedgerEntry) error
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
