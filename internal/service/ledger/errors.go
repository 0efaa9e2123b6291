package ledger

import (
	"errors"
	"fmt"

	"partner/internal/entities"
)

var (
	ErrEntryExists  = errors.New("cash ledger entry already exists for order")
	ErrInvalidEntry = fmt.Errorf("%w: invalid cash ledger entry", entities.ErrValidation)
	ErrInvalidRange = fmt.Errorf("%w: invalid date range", entities.ErrValidation)
)
