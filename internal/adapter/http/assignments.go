package httpadapter

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

type cloneRequest struct {
	From domain.Date `json:"from"`
	To   domain.Date `json:"to"`
}

type moveRequest struct {
	Date domain.Date       `json:"date"`
	Time domain.AnchorTime `json:"time"`
}

type duplicateRequest struct {
	To domain.Date `json:"to"`
}

func (h *Handler) handleCloneSlot(w http.ResponseWriter, r *http.Request) {
	var req cloneRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	p, vs, err := h.svc.CloneSlot(r.Context(), chi.URLParam(r, "id"), req.From, req.To)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, placementResponse{Slot: p.Key, Assignment: p.Assignment, Violations: nonNil(vs)})
}

func (h *Handler) handleMoveSlot(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	to := domain.SlotKey{Date: req.Date, Time: req.Time}
	a, vs, err := h.svc.MoveSlot(r.Context(), chi.URLParam(r, "id"), to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placementResponse{Slot: to, Assignment: a, Violations: nonNil(vs)})
}

// handleDuplicateDay answers 200 when every assignment was copied, 207 when
// only some were and 409 when none could be. The body always lists both
// outcomes.
func (h *Handler) handleDuplicateDay(w http.ResponseWriter, r *http.Request) {
	from, err := dateParam(r, "date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req duplicateRequest
	if err = decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	res, err := h.svc.DuplicateDay(r.Context(), from, req.To)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case res != nil && (errors.Is(err, port.ErrPartialFailure) || errors.Is(err, port.ErrSchedulingBlocked)):
		writeJSON(w, statusFor(err), res)
	default:
		h.writeError(w, r, err)
	}
}

func (h *Handler) handleClearDay(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, "date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	n, err := h.svc.ClearDay(r.Context(), date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed": n})
}

