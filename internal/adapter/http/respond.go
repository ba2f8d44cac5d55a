package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
	"adsdesk/internal/core/wizard"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps service errors to HTTP statuses. Unexpected errors are
// logged and answered with a generic 500, or 502 when the ads platform
// failed a read.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("path", r.URL.Path))
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func statusOf(err error) int {
	var me domain.MutationError
	switch {
	case errors.Is(err, port.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, wizard.ErrUnknownField),
		errors.Is(err, wizard.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, port.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrMutationInFlight):
		return http.StatusConflict
	case errors.Is(err, port.ErrWizardIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.As(err, &me):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// notificationStatus is the status of a mutation response: the mutation was
// attempted either way, but a failed one is reported as a gateway error.
func notificationStatus(n domain.Notification, ok int) int {
	if n.Level == domain.LevelError {
		return http.StatusBadGateway
	}
	return ok
}

// decodeJSON reads the request body into v. An empty body leaves v untouched
// when optional is set.
func decodeJSON(r *http.Request, v any, optional bool) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
