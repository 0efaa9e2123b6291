package order_reject_post

import (
	"net/http"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.BadRequest(w, h.log, "invalid request body")
		return
	}

	orderID := mux.Vars(r)["id"]
	confirmer := prompt.NewScripted().Answer(prompt.KindReject, req.Confirm)

	if err := h.service.Reject(r.Context(), orderID, confirmer); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Message{Message: "Order rejected"})
}
