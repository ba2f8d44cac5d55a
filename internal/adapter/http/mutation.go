package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adsdesk/internal/core/domain"
)

type statusRequest struct {
	Status string `json:"status"`
}

type pixelRequest struct {
	PixelID string `json:"pixel_id"`
}

type pixelResponse struct {
	Pixel        domain.Pixel        `json:"pixel"`
	Notification domain.Notification `json:"notification"`
}

type leadFormResponse struct {
	LeadForm     domain.LeadForm     `json:"lead_form"`
	Notification domain.Notification `json:"notification"`
}

// handleToggleStatus returns a handler that moves one entity of kind to the
// status in the body. The response is the resulting notification.
func (h *Handler) handleToggleStatus(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := decodeJSON(r, &req, false); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		n, err := h.mutations.ToggleStatus(r.Context(), domain.StatusToggleRequest{
			EntityID: chi.URLParam(r, "id"),
			Kind:     kind,
			Status:   status,
		})
		if err != nil {
			h.writeError(w, r, "toggle status", err)
			return
		}
		h.writeJSON(w, notificationStatus(n, http.StatusOK), n)
	}
}

func (h *Handler) handleAttachPixel(w http.ResponseWriter, r *http.Request) {
	var req pixelRequest
	if err := decodeJSON(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	n, err := h.mutations.AttachPixel(r.Context(), chi.URLParam(r, "id"), req.PixelID)
	if err != nil {
		h.writeError(w, r, "attach pixel", err)
		return
	}
	h.writeJSON(w, notificationStatus(n, http.StatusOK), n)
}

func (h *Handler) handleDetachPixel(w http.ResponseWriter, r *http.Request) {
	n, err := h.mutations.DetachPixel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "detach pixel", err)
		return
	}
	h.writeJSON(w, notificationStatus(n, http.StatusOK), n)
}

func (h *Handler) handleCreatePixel(w http.ResponseWriter, r *http.Request) {
	var req domain.PixelCreate
	if err := decodeJSON(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	p, n, err := h.mutations.CreatePixel(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create pixel", err)
		return
	}
	h.writeJSON(w, notificationStatus(n, http.StatusCreated), pixelResponse{Pixel: p, Notification: n})
}

func (h *Handler) handleCreateLeadForm(w http.ResponseWriter, r *http.Request) {
	var req domain.LeadFormCreate
	if err := decodeJSON(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	f, n, err := h.mutations.CreateLeadForm(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create lead form", err)
		return
	}
	h.writeJSON(w, notificationStatus(n, http.StatusCreated), leadFormResponse{LeadForm: f, Notification: n})
}

// handleNotifications returns the most recent notifications, newest first.
// The optional limit query parameter overrides the configured page size.
func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := h.notificationLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	list, err := h.mutations.Notifications(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, "list notifications", err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleNotification(w http.ResponseWriter, r *http.Request) {
	n, err := h.mutations.Notification(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get notification", err)
		return
	}
	h.writeJSON(w, http.StatusOK, n)
}
