package geolocation

import "errors"

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrUnsupported         = errors.New("geolocation is not supported")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)
