package ping_get

import (
	"net/http"

	"partner/internal/dto"
	"partner/internal/handlers/rest/respond"
)

// Handler проверка, что локальный API агента отвечает.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, dto.Message{Message: "pong"})
}
