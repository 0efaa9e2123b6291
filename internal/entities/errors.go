package entities

import "errors"

// ErrValidation корень локальных ошибок ввода: операция прерывается до похода в сеть.
var ErrValidation = errors.New("validation error")
