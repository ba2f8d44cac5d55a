package port

import (
	"context"
	"encoding/json"
	"errors"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/wizard"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	// ErrMutationInFlight rejects a mutation of an entity that already has
	// one pending.
	ErrMutationInFlight = errors.New("a change to this entity is already in progress")
	ErrSessionNotFound  = errors.New("wizard session not found")
	// ErrWizardIncomplete gates submission until every section is complete.
	ErrWizardIncomplete = errors.New("wizard is not complete")
	ErrTooManySessions  = errors.New("too many open wizard sessions")
)

// CatalogService serves cached read models for the selected date range.
type CatalogService interface {
	DateRange() domain.DateRange
	// SelectRange changes the shared date range and invalidates every
	// date-dependent read.
	SelectRange(r domain.DateRange)

	Campaigns(ctx context.Context) (domain.CampaignPage, error)
	AdGroups(ctx context.Context, campaignID string) (domain.AdGroupPage, error)
	Ads(ctx context.Context, adGroupID string) (domain.AdPage, error)
	Pixels(ctx context.Context) (domain.PixelList, error)
	Identities(ctx context.Context) (domain.IdentityList, error)
	Leads(ctx context.Context) (domain.LeadPage, error)
	Analytics(ctx context.Context) (domain.AnalyticsReport, error)
}

// MutationService performs writes. A collaborator failure is reported as an
// error-level notification, not as an error; errors mean the request was not
// attempted.
type MutationService interface {
	ToggleStatus(ctx context.Context, req domain.StatusToggleRequest) (domain.Notification, error)
	AttachPixel(ctx context.Context, adID, pixelID string) (domain.Notification, error)
	DetachPixel(ctx context.Context, adID string) (domain.Notification, error)
	CreatePixel(ctx context.Context, req domain.PixelCreate) (domain.Pixel, domain.Notification, error)
	CreateLeadForm(ctx context.Context, req domain.LeadFormCreate) (domain.LeadForm, domain.Notification, error)
	Notifications(ctx context.Context, limit int) ([]domain.Notification, error)
	Notification(ctx context.Context, id string) (domain.Notification, error)
}

// FieldChange is one untyped field edit as received from a client.
type FieldChange struct {
	Section string          `json:"section"`
	Field   string          `json:"field"`
	Value   json.RawMessage `json:"value"`
}

// WizardService manages creation wizard sessions.
type WizardService interface {
	Open(seed *wizard.CloneSeed) (string, wizard.View, error)
	View(id string) (wizard.View, error)
	Change(id string, changes []FieldChange) (wizard.View, int, error)
	Seed(id string, seed wizard.CloneSeed) (wizard.View, error)
	Toggle(id string, section wizard.Section) (wizard.View, bool, error)
	Submit(ctx context.Context, id string) (domain.CompositeResult, domain.Notification, error)
	Close(id string) error
}
