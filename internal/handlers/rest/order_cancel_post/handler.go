package order_cancel_post

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

// ServeHTTP reason может быть номером из списка причин или свободным текстом.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ReasonRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.BadRequest(w, h.log, "invalid request body")
		return
	}

	confirmer := prompt.NewScripted().
		Text(prompt.KindCancelReason, req.Reason).
		Answer(prompt.KindCancel, req.Confirm)

	if err := h.service.Cancel(r.Context(), mux.Vars(r)["id"], req.Reason, confirmer); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Message{Message: "Order cancelled"})
}
