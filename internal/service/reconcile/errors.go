package reconcile

import (
	"fmt"

	"partner/internal/entities"
)

var (
	ErrInvalidAmount = fmt.Errorf("%w: collected amount must be a non-negative number", entities.ErrValidation)
	ErrNotCashOrder  = fmt.Errorf("%w: order is not cash on delivery", entities.ErrValidation)
)
