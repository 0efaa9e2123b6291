package orders_refresh

import "errors"

var ErrNoPosition = errors.New("partner position is unknown")
