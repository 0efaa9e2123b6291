package session_get

import (
	"net/http"

	"partner/internal/dto"
	"partner/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	session := h.service.State()

	respond.JSON(w, h.log, http.StatusOK, dto.Session{
		PartnerID: session.PartnerID,
		LoggedIn:  session.LoggedIn,
	})
}
