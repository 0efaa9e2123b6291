package pool

import (
	"fmt"

	"partner/internal/entities"
	"partner/internal/pkg/prompt"
)

var (
	ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", entities.ErrValidation)
	ErrDeclined       = prompt.ErrDeclined
)
