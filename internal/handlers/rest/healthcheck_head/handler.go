package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

// Handler готовность агента: не в остановке и журнал доступен.
// Заголовок X-Partner-Session показывает, выполнен ли вход.
// db и loggedIn могут быть nil, тогда проверка пропускается.
type Handler struct {
	isShuttingDown *atomic.Bool
	db             Pinger
	loggedIn       func() bool
}

func New(isShuttingDown *atomic.Bool, db Pinger, loggedIn func() bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		db:             db,
		loggedIn:       loggedIn,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	if h.loggedIn != nil {
		session := "none"
		if h.loggedIn() {
			session = "active"
		}
		w.Header().Set("X-Partner-Session", session)
	}
	w.WriteHeader(http.StatusNoContent)
}
