package httpadapter

import (
	"net/http"

	"campaign-planner/internal/core/domain"
)

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Policy(r.Context()))
}

// handleUpdateSettings replaces the whole policy. Omitted fields are zero and
// fail validation, so clients send the full document they got from GET.
func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var p domain.Policy
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	applied, err := h.svc.UpdatePolicy(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, applied)
}
