//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=realtime_test
package realtime

import (
	"context"

	"partner/internal/entities"
	"partner/pkg/logger"
)

type credentials interface {
	Token() (string, error)
	PartnerID() string
}

type Dispatcher interface {
	ProcessEvent(ctx context.Context, event entities.OrderEvent) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
