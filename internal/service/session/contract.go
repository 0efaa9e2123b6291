//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"partner/pkg/logger"
)

type Credentials interface {
	Login(token, partnerID string) error
	Logout()
	Token() (string, error)
	PartnerID() string
}

// Resetter состояние, привязанное к аккаунту партнёра.
type Resetter interface {
	Reset()
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
