package order_delay_patch

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
	var req dto.ReasonRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.BadRequest(w, h.log, "invalid request body")
		return
	}

	confirmer := prompt.NewScripted().
		Text(prompt.KindDelayReason, req.Reason).
		Answer(prompt.KindDelay, req.Confirm)

	if err := h.service.ReportDelay(r.Context(), mux.Vars(r)["id"], req.Reason, confirmer); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Message{Message: "Delay reported"})
}
