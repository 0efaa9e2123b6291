package orders_get

import (
	"net/http"

	"partner/internal/dto"
	"partner/internal/handlers/rest/respond"
	"partner/pkg/logger"
)

// Handler отдаёт последний снапшот коллекции, не дожидаясь бэкенда.
// ?refresh=true дополнительно будит фоновое обновление.
type Handler struct {
	log       handlerLogger
	store     Store
	refresher Refresher
}

func New(log handlerLogger, store Store, refresher Refresher) *Handler {
	handlerLog := log.With(
		logger.NewField("collection", store.Collection().String()),
	)

	return &Handler{
		log:       handlerLog,
		store:     store,
		refresher: refresher,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		h.refresher.Trigger()
	}

	snapshot := h.store.Snapshot()
	respond.JSON(w, h.log, http.StatusOK, dto.FromSnapshot(h.store.Collection(), snapshot))
}
