package httpadapter

import (
	"net/http"

	"campaign-planner/internal/core/port"
)

// handleProgress returns totals for ?from=&to= and, when clicksGoal or
// revenueGoal are given, progress towards them.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeQuery(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var goals port.Goals
	if goals.Clicks, err = floatQuery(r, "clicksGoal"); err != nil {
		badRequest(w, err.Error())
		return
	}
	if goals.Revenue, err = floatQuery(r, "revenueGoal"); err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Progress(r.Context(), rng, goals))
}

func (h *Handler) handleDailyProgress(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeQuery(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Daily(r.Context(), rng))
}

func (h *Handler) handleWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeQuery(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Weekly(r.Context(), rng))
}
