package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

// slotRequest is the body of POST /slots and POST /slots/dry-run.
type slotRequest struct {
	Date       domain.Date       `json:"date"`
	Time       domain.AnchorTime `json:"time"`
	AudienceID string            `json:"audienceId"`
	TemplateID string            `json:"templateId"`
	Name       string            `json:"name,omitempty"`
	ClickLimit *int64            `json:"clickLimit,omitempty"`
}

func (s slotRequest) toPort() port.SlotRequest {
	return port.SlotRequest{
		Key:        domain.SlotKey{Date: s.Date, Time: s.Time},
		AudienceID: s.AudienceID,
		TemplateID: s.TemplateID,
		Name:       s.Name,
		ClickLimit: s.ClickLimit,
	}
}

type placementResponse struct {
	Slot       domain.SlotKey     `json:"slot"`
	Assignment domain.Assignment  `json:"assignment"`
	Violations []domain.Violation `json:"violations"`
}

func nonNil(vs []domain.Violation) []domain.Violation {
	if vs == nil {
		return []domain.Violation{}
	}
	return vs
}

// handleListSlots returns every anchor slot of the inclusive from..to
// window, empty slots included.
func (h *Handler) handleListSlots(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeQuery(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Range(r.Context(), rng.From, rng.To))
}

func (h *Handler) handleGetSlot(w http.ResponseWriter, r *http.Request) {
	key, err := slotParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"slot":        key,
		"assignments": h.svc.Slot(r.Context(), key),
	})
}

// handleCreateSlot places a campaign. Blocking violations produce 409 with
// the violations in the body; advisory ones are returned with 201.
func (h *Handler) handleCreateSlot(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	a, vs, err := h.svc.CreateSlot(r.Context(), req.toPort())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, placementResponse{
		Slot:       domain.SlotKey{Date: req.Date, Time: req.Time},
		Assignment: a,
		Violations: nonNil(vs),
	})
}

func (h *Handler) handleDryRun(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	res, err := h.svc.DryRun(r.Context(), req.toPort())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res.Violations = nonNil(res.Violations)
	writeJSON(w, http.StatusOK, res)
}

// handleRemoveSlot is idempotent: removing an absent assignment answers 200
// with removed=false.
func (h *Handler) handleRemoveSlot(w http.ResponseWriter, r *http.Request) {
	key, err := slotParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	removed, err := h.svc.RemoveSlot(r.Context(), key, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}
