package payout_post

import (
	"net/http"

	"partner/internal/dto"
	"partner/internal/handlers/rest/respond"
	"partner/internal/pkg/prompt"
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

// ServeHTTP пустая сумма означает вывод всего заработка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.BadRequest(w, h.log, "invalid request body")
		return
	}

	confirmer := prompt.NewScripted().Answer(prompt.KindPayout, req.Confirm)

	message, err := h.service.RequestPayout(r.Context(), req.Amount, confirmer)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.Message{Message: message})
}
