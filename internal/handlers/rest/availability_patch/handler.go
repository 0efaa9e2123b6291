package availability_patch

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.AvailabilityRequest
	if err := respond.Decode(r, &req); err != nil || req.IsOnline == nil {
		respond.BadRequest(w, h.log, "isOnline is required")
		return
	}

	availability, err := h.service.Set(r.Context(), *req.IsOnline)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromAvailability(availability))
}
