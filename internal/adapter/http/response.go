package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
	"campaign-planner/internal/core/progress"
)

type errorResponse struct {
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail and the header is already sent
	_ = json.NewEncoder(w).Encode(body)
}

// statusFor maps usecase errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrPartialFailure):
		return http.StatusMultiStatus
	case errors.Is(err, port.ErrSchedulingBlocked),
		errors.Is(err, port.ErrNothingToUndo),
		errors.Is(err, port.ErrNothingToRedo):
		return http.StatusConflict
	case errors.Is(err, port.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrInvalidRequest),
		errors.Is(err, port.ErrInvalidSlot),
		errors.Is(err, port.ErrOutsidePlanningWindow),
		errors.Is(err, port.ErrInvalidPolicy),
		errors.Is(err, port.ErrUnknownAudience),
		errors.Is(err, port.ErrUnknownTemplate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Internal errors are logged and hidden from the
// client; blocked commands carry their violations.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
			slog.Any("error", err))
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	resp := errorResponse{Error: err.Error()}
	var blocked *port.BlockedError
	if errors.As(err, &blocked) {
		resp.Violations = blocked.Violations
	}
	writeJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func dateParam(r *http.Request, name string) (domain.Date, error) {
	return domain.ParseDate(chi.URLParam(r, name))
}

func slotParam(r *http.Request) (domain.SlotKey, error) {
	d, err := dateParam(r, "date")
	if err != nil {
		return domain.SlotKey{}, err
	}
	at, err := domain.ParseAnchorTime(chi.URLParam(r, "time"))
	if err != nil {
		return domain.SlotKey{}, err
	}
	return domain.SlotKey{Date: d, Time: at}, nil
}

// maxRangeDays bounds the window a single listing or report may cover.
const maxRangeDays = 366

// rangeQuery reads the required from and to query parameters. The window
// may span at most maxRangeDays days.
func rangeQuery(r *http.Request) (progress.DateRange, error) {
	q := r.URL.Query()
	from, err := domain.ParseDate(q.Get("from"))
	if err != nil {
		return progress.DateRange{}, errors.Wrap(err, "from")
	}
	to, err := domain.ParseDate(q.Get("to"))
	if err != nil {
		return progress.DateRange{}, errors.Wrap(err, "to")
	}
	if to.Before(from) {
		return progress.DateRange{}, errors.New("'to' is before 'from'")
	}
	if days := to.DaysSince(from) + 1; days > maxRangeDays {
		return progress.DateRange{}, errors.Newf("range covers %d days, at most %d are allowed", days, maxRangeDays)
	}
	return progress.DateRange{From: from, To: to}, nil
}

func floatQuery(r *http.Request, name string) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Newf("invalid %s", name)
	}
	return v, nil
}
