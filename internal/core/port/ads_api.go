package port

import (
	"context"
	"errors"

	"adsdesk/internal/core/domain"
)

var ErrNotFound = errors.New("not found")

// ListQuery filters a read collaborator call. ParentID narrows ad groups to
// one campaign and ads to one ad group; it is ignored elsewhere.
type ListQuery struct {
	Period   domain.Period
	ParentID string
}

// AdsAPI is the outbound port to the ads platform. Implementations classify
// write failures with domain.MutationError so callers can tell a rejection
// from a transport failure. All methods must be safe for concurrent use.
type AdsAPI interface {
	ListCampaigns(ctx context.Context, q ListQuery) (domain.CampaignPage, error)
	ListAdGroups(ctx context.Context, q ListQuery) (domain.AdGroupPage, error)
	ListAds(ctx context.Context, q ListQuery) (domain.AdPage, error)
	ListPixels(ctx context.Context) (domain.PixelList, error)
	ListIdentities(ctx context.Context) (domain.IdentityList, error)
	ListLeads(ctx context.Context, q ListQuery) (domain.LeadPage, error)
	GetAnalytics(ctx context.Context, q ListQuery) (domain.AnalyticsReport, error)

	// CreateComposite creates a campaign, ad group and ad in one call.
	CreateComposite(ctx context.Context, req domain.CompositeCreate) (domain.CompositeResult, error)
	CreatePixel(ctx context.Context, req domain.PixelCreate) (domain.Pixel, error)
	CreateLeadForm(ctx context.Context, req domain.LeadFormCreate) (domain.LeadForm, error)
	// UpdateStatus changes the status of one entity and returns the
	// platform's message.
	UpdateStatus(ctx context.Context, req domain.StatusToggleRequest) (string, error)
	AttachPixel(ctx context.Context, adID, pixelID string) (string, error)
	DetachPixel(ctx context.Context, adID string) (string, error)
}
