package httpadapter

import (
	"fmt"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
	"adsdesk/internal/core/wizard"
)

// cloneRequest names an existing entity to pre-populate a draft from. Only
// the field matching Kind is read.
type cloneRequest struct {
	Kind     string           `json:"kind"`
	Campaign *domain.Campaign `json:"campaign"`
	AdGroup  *domain.AdGroup  `json:"ad_group"`
	Ad       *domain.Ad       `json:"ad"`
}

func (c cloneRequest) seed() (wizard.CloneSeed, error) {
	kind, err := domain.ParseEntityKind(c.Kind)
	if err != nil {
		return wizard.CloneSeed{}, fmt.Errorf("%w: %v", port.ErrInvalidRequest, err)
	}
	s := wizard.CloneSeed{Kind: kind, Campaign: c.Campaign, AdGroup: c.AdGroup, Ad: c.Ad}
	if (kind == domain.KindCampaign && s.Campaign == nil) ||
		(kind == domain.KindAdGroup && s.AdGroup == nil) ||
		(kind == domain.KindAd && s.Ad == nil) {
		return wizard.CloneSeed{}, fmt.Errorf("%w: missing %s to clone", port.ErrInvalidRequest, kind)
	}
	return s, nil
}

type sessionResponse struct {
	ID   string      `json:"id"`
	View wizard.View `json:"view"`
}

type changeResponse struct {
	View    wizard.View `json:"view"`
	Applied int         `json:"applied"`
}

type toggleResponse struct {
	View    wizard.View `json:"view"`
	Toggled bool        `json:"toggled"`
}

type submitResponse struct {
	Result       domain.CompositeResult `json:"result"`
	Notification domain.Notification    `json:"notification"`
}

// handleOpenWizard opens a session. The body is optional; when present it is
// a clone request seeding the draft.
func (h *Handler) handleOpenWizard(w http.ResponseWriter, r *http.Request) {
	var req *cloneRequest
	if err := decodeJSON(r, &req, true); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var seed *wizard.CloneSeed
	if req != nil {
		s, err := req.seed()
		if err != nil {
			h.writeError(w, r, "open wizard", err)
			return
		}
		seed = &s
	}
	id, view, err := h.wizard.Open(seed)
	if err != nil {
		h.writeError(w, r, "open wizard", err)
		return
	}
	w.Header().Set("Location", path.Join(r.URL.Path, id))
	h.writeJSON(w, http.StatusCreated, sessionResponse{ID: id, View: view})
}

func (h *Handler) handleWizardView(w http.ResponseWriter, r *http.Request) {
	view, err := h.wizard.View(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "wizard view", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleCloseWizard(w http.ResponseWriter, r *http.Request) {
	if err := h.wizard.Close(chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "close wizard", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWizardChange applies a batch of field edits. A batch with any
// unknown field or invalid value is rejected as a whole.
func (h *Handler) handleWizardChange(w http.ResponseWriter, r *http.Request) {
	var changes []port.FieldChange
	if err := decodeJSON(r, &changes, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	view, n, err := h.wizard.Change(chi.URLParam(r, "id"), changes)
	if err != nil {
		h.writeError(w, r, "wizard change", err)
		return
	}
	h.writeJSON(w, http.StatusOK, changeResponse{View: view, Applied: n})
}

func (h *Handler) handleWizardClone(w http.ResponseWriter, r *http.Request) {
	var req cloneRequest
	if err := decodeJSON(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	seed, err := req.seed()
	if err != nil {
		h.writeError(w, r, "wizard clone", err)
		return
	}
	view, err := h.wizard.Seed(chi.URLParam(r, "id"), seed)
	if err != nil {
		h.writeError(w, r, "wizard clone", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleWizardToggle(w http.ResponseWriter, r *http.Request) {
	section, err := wizard.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, ok, err := h.wizard.Toggle(chi.URLParam(r, "id"), section)
	if err != nil {
		h.writeError(w, r, "wizard toggle", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toggleResponse{View: view, Toggled: ok})
}

// handleWizardSubmit sends the draft to the ads platform. Incomplete drafts
// are refused with 422, a second submit while one is in flight with 409.
func (h *Handler) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	res, n, err := h.wizard.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "wizard submit", err)
		return
	}
	h.writeJSON(w, notificationStatus(n, http.StatusCreated), submitResponse{Result: res, Notification: n})
}
