package earnings

import (
	"fmt"

	"partner/internal/entities"
	"partner/internal/pkg/prompt"
)

var (
	ErrInvalidAmount   = fmt.Errorf("%w: please enter a valid amount", entities.ErrValidation)
	ErrExceedsEarnings = fmt.Errorf("%w: amount exceeds total earnings", entities.ErrValidation)
	ErrDeclined        = prompt.ErrDeclined
)
