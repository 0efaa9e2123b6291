package order_status_patch

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"partner/internal/dto"
	"partner/internal/entities"
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
	var req dto.StatusUpdateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.BadRequest(w, h.log, "invalid request body")
		return
	}

	target := entities.PartnerStatus(strings.TrimSpace(req.Status))
	if target == "" {
		respond.BadRequest(w, h.log, "status is required")
		return
	}

	order, err := h.service.Advance(r.Context(), mux.Vars(r)["id"], target, confirmerFrom(req))
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(*order))
}

// confirmerFrom ответы партнёра приходят в теле запроса. Без суммы
// принимается предложенная сумма к оплате.
func confirmerFrom(req dto.StatusUpdateRequest) *prompt.Scripted {
	confirmer := prompt.NewScripted().
		Answer(prompt.KindStatus, req.Confirm).
		Answer(prompt.KindShortfall, req.ConfirmShortfall).
		Answer(prompt.KindDelivery, req.ConfirmDelivery || req.Confirm)

	if collected := strings.TrimSpace(req.Collected); collected != "" {
		confirmer.Text(prompt.KindCollected, collected)
	} else {
		confirmer.UseDefault(prompt.KindCollected)
	}
	return confirmer
}
