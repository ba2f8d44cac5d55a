package httpadapter

import (
	"context"
	"net/http"

	"adsdesk/internal/core/domain"
)

type dateRangeRequest struct {
	Preset string `json:"preset"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

func (h *Handler) handleGetDateRange(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.DateRange())
}

// handleSelectDateRange replaces the shared date range. Custom ranges carry
// start and end dates in YYYY-MM-DD form.
func (h *Handler) handleSelectDateRange(w http.ResponseWriter, r *http.Request) {
	var req dateRangeRequest
	if err := decodeJSON(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	rng, err := domain.ParseDateRange(req.Preset, req.Start, req.End)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.catalog.SelectRange(rng)
	h.writeJSON(w, http.StatusOK, rng)
}

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	serveRead(h, w, r, "list campaigns", h.catalog.Campaigns)
}

// handleAdGroups lists the ad groups of the campaign given in campaign_id.
func (h *Handler) handleAdGroups(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("campaign_id")
	if id == "" {
		http.Error(w, "missing campaign_id", http.StatusBadRequest)
		return
	}
	serveRead(h, w, r, "list ad groups", func(ctx context.Context) (domain.AdGroupPage, error) {
		return h.catalog.AdGroups(ctx, id)
	})
}

// handleAds lists the ads of the ad group given in ad_group_id.
func (h *Handler) handleAds(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("ad_group_id")
	if id == "" {
		http.Error(w, "missing ad_group_id", http.StatusBadRequest)
		return
	}
	serveRead(h, w, r, "list ads", func(ctx context.Context) (domain.AdPage, error) {
		return h.catalog.Ads(ctx, id)
	})
}

func (h *Handler) handlePixels(w http.ResponseWriter, r *http.Request) {
	serveRead(h, w, r, "list pixels", h.catalog.Pixels)
}

func (h *Handler) handleIdentities(w http.ResponseWriter, r *http.Request) {
	serveRead(h, w, r, "list identities", h.catalog.Identities)
}

func (h *Handler) handleLeads(w http.ResponseWriter, r *http.Request) {
	serveRead(h, w, r, "list leads", h.catalog.Leads)
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	serveRead(h, w, r, "analytics", h.catalog.Analytics)
}

func serveRead[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string, read func(context.Context) (T, error)) {
	v, err := read(r.Context())
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}
