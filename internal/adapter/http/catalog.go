package httpadapter

import "net/http"

func (h *Handler) handleListAudiences(w http.ResponseWriter, r *http.Request) {
	audiences, err := h.svc.Audiences(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, audiences)
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.Templates(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}
