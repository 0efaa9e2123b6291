package backend

import (
	"errors"
	"net/http"
)

// RemoteError бэкенд ответил ошибкой или запрос не дошёл.
// Message показывается партнёру как есть.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Temporary стоит ли повторять запрос.
func (e *RemoteError) Temporary() bool {
	switch e.StatusCode {
	case 0,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func AsRemote(err error) (*RemoteError, bool) {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote, true
	}
	return nil, false
}
