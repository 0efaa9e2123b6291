package credentials

import "errors"

// ErrLoginRequired учётных данных нет или срок токена истёк. Не ретраится.
var ErrLoginRequired = errors.New("please login again")
