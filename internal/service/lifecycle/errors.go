package lifecycle

import (
	"errors"
	"fmt"

	"partner/internal/entities"
	"partner/internal/pkg/prompt"
)

var (
	ErrValidation            = entities.ErrValidation
	ErrIllegalTransition     = fmt.Errorf("%w: illegal transition", ErrValidation)
	ErrMissingReconciliation = fmt.Errorf("%w: cash reconciliation required", ErrValidation)
	ErrReasonRequired        = fmt.Errorf("%w: reason is required", ErrValidation)
	ErrReasonTooShort        = fmt.Errorf("%w: reason must be at least %d characters", ErrValidation, minDelayReasonLen)
	ErrInvalidOrderID        = fmt.Errorf("%w: invalid order id", ErrValidation)

	ErrOrderNotFound = errors.New("order not found among active orders")
	ErrDeclined      = prompt.ErrDeclined
)
