package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-planner/internal/core/port"
	"campaign-planner/internal/observability"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the planner usecase, a logger for structured logging and a
// metrics registry. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc     port.SchedulerUseCase
	logger  *slog.Logger
	metrics observability.MetricsRegistry
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. A nil metrics
// registry disables request metrics.
func NewHandler(svc port.SchedulerUseCase, logger *slog.Logger, metrics observability.MetricsRegistry) *Handler {
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}
	h := &Handler{svc: svc, logger: logger, metrics: metrics}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/slots", func(r chi.Router) {
			r.Get("/", h.handleListSlots)
			r.Post("/", h.handleCreateSlot)
			r.Post("/dry-run", h.handleDryRun)
			r.Get("/{date}/{time}", h.handleGetSlot)
			r.Delete("/{date}/{time}/{id}", h.handleRemoveSlot)
		})
		r.Post("/assignments/{id}/clone", h.handleCloneSlot)
		r.Post("/assignments/{id}/move", h.handleMoveSlot)
		r.Post("/days/{date}/duplicate", h.handleDuplicateDay)
		r.Delete("/days/{date}", h.handleClearDay)

		r.Get("/history", h.handleHistory)
		r.Post("/history/undo", h.handleUndo)
		r.Post("/history/redo", h.handleRedo)

		r.Get("/progress", h.handleProgress)
		r.Get("/progress/daily", h.handleDailyProgress)
		r.Get("/progress/weekly", h.handleWeeklyProgress)

		r.Get("/settings", h.handleGetSettings)
		r.Put("/settings", h.handleUpdateSettings)

		r.Get("/audiences", h.handleListAudiences)
		r.Get("/templates", h.handleListTemplates)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
