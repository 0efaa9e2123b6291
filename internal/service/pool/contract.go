//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pool_test
package pool

import (
	"context"

	"partner/pkg/logger"
)

type Gateway interface {
	Accept(ctx context.Context, orderID string) error
	Reject(ctx context.Context, orderID string) error
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
