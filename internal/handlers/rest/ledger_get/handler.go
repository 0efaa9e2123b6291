package ledger_get

import (
	"net/http"
	"time"

	"partner/internal/dto"
	"partner/internal/handlers/rest/respond"
)

// defaultDays период по умолчанию: сегодня и шесть прошлых дней.
const defaultDays = 7

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	return NewWithClock(log, service, time.Now)
}

func NewWithClock(log handlerLogger, service Service, now func() time.Time) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     now,
	}
}

// ServeHTTP from и to даты YYYY-MM-DD в UTC, to включительно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.period(r)
	if !ok {
		respond.BadRequest(w, h.log, "from and to must be dates in YYYY-MM-DD format")
		return
	}

	report, err := h.service.Report(r.Context(), from, to)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCashReport(report))
}

func (h *Handler) period(r *http.Request) (time.Time, time.Time, bool) {
	today := h.now().UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, 1-defaultDays)
	to := today

	q := r.URL.Query()
	if raw := q.Get("from"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		from = d
	}
	if raw := q.Get("to"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		to = d
	}

	return from, to.AddDate(0, 0, 1), true
}
