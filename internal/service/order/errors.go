package order

import (
	"errors"
	"fmt"

	"partner/internal/entities"
)

var (
	ErrUndefinedEvent = errors.New("undefined order event")
	ErrMalformedEvent = errors.New("malformed order event")
	ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", entities.ErrValidation)
	ErrOrderNotFound  = errors.New("order not found")
)
