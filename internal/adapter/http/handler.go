package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
)

// Handler is the inbound HTTP adapter of the console backend. It holds the
// catalog, mutation and wizard services and exposes them on a chi.Router.
type Handler struct {
	catalog   port.CatalogService
	mutations port.MutationService
	wizard    port.WizardService
	logger    *slog.Logger
	router    chi.Router

	notificationLimit int
}

// NewHandler creates a handler with all routes configured. notificationLimit
// is the page size of the notifications feed when the client does not ask
// for one.
func NewHandler(catalog port.CatalogService, mutations port.MutationService, wizard port.WizardService, logger *slog.Logger, notificationLimit int) *Handler {
	h := &Handler{
		catalog:           catalog,
		mutations:         mutations,
		wizard:            wizard,
		logger:            logger,
		notificationLimit: notificationLimit,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/date-range", h.handleGetDateRange)
		r.Put("/date-range", h.handleSelectDateRange)

		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/ad-groups", h.handleAdGroups)
		r.Get("/ads", h.handleAds)
		r.Get("/pixels", h.handlePixels)
		r.Get("/identities", h.handleIdentities)
		r.Get("/leads", h.handleLeads)
		r.Get("/analytics", h.handleAnalytics)

		r.Put("/campaigns/{id}/status", h.handleToggleStatus(domain.KindCampaign))
		r.Put("/ad-groups/{id}/status", h.handleToggleStatus(domain.KindAdGroup))
		r.Put("/ads/{id}/status", h.handleToggleStatus(domain.KindAd))
		r.Put("/ads/{id}/pixel", h.handleAttachPixel)
		r.Delete("/ads/{id}/pixel", h.handleDetachPixel)
		r.Post("/pixels", h.handleCreatePixel)
		r.Post("/lead-forms", h.handleCreateLeadForm)

		r.Get("/notifications", h.handleNotifications)
		r.Get("/notifications/{id}", h.handleNotification)

		r.Route("/wizard/sessions", func(r chi.Router) {
			r.Post("/", h.handleOpenWizard)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleWizardView)
				r.Delete("/", h.handleCloseWizard)
				r.Patch("/fields", h.handleWizardChange)
				r.Post("/clone", h.handleWizardClone)
				r.Post("/sections/{section}/toggle", h.handleWizardToggle)
				r.Post("/submit", h.handleWizardSubmit)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
