package httpadapter

import "net/http"

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.History(r.Context()))
}

// handleUndo answers 409 when there is nothing to undo.
func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Undo(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) handleRedo(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Redo(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
