package usecase

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"adsdesk/internal/core/cache"
	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
)

// Cache resource names.
const (
	ResourceCampaigns  = "campaigns"
	ResourceAdGroups   = "ad_groups"
	ResourceAds        = "ads"
	ResourcePixels     = "pixels"
	ResourceIdentities = "identities"
	ResourceLeads      = "leads"
	ResourceAnalytics  = "analytics"
)

// rangeResources are the resources whose keys carry the selected date range.
var rangeResources = []string{
	ResourceCampaigns,
	ResourceAdGroups,
	ResourceAds,
	ResourceLeads,
	ResourceAnalytics,
}

// resourcesOf lists the resources whose read models can contain an entity
// of the given kind.
func resourcesOf(kind domain.EntityKind) []string {
	switch kind {
	case domain.KindCampaign:
		return []string{ResourceCampaigns, ResourceAnalytics}
	case domain.KindAdGroup:
		return []string{ResourceAdGroups}
	case domain.KindAd:
		return []string{ResourceAds}
	}
	return nil
}

var _ port.CatalogService = (*CatalogUseCase)(nil)

// CatalogUseCase serves cached read models filtered by the shared date range.
type CatalogUseCase struct {
	api   port.AdsAPI
	store *cache.Store
	now   func() time.Time

	mu  sync.RWMutex
	rng domain.DateRange
}

// CatalogOption configures a CatalogUseCase.
type CatalogOption func(*CatalogUseCase)

// WithClock replaces the wall clock used to resolve relative date ranges.
func WithClock(now func() time.Time) CatalogOption {
	return func(u *CatalogUseCase) { u.now = now }
}

// NewCatalogUseCase returns a use case with "today" selected.
func NewCatalogUseCase(api port.AdsAPI, store *cache.Store, opts ...CatalogOption) *CatalogUseCase {
	u := &CatalogUseCase{
		api:   api,
		store: store,
		now:   time.Now,
		rng:   domain.DateRange{Preset: domain.PresetToday},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// DateRange returns the selected date range.
func (u *CatalogUseCase) DateRange() domain.DateRange {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.rng
}

// SelectRange changes the selected date range. Every cached date-dependent
// read model is invalidated so that lists refetch under the new filter.
func (u *CatalogUseCase) SelectRange(r domain.DateRange) {
	u.mu.Lock()
	changed := u.rng != r
	u.rng = r
	u.mu.Unlock()
	if changed {
		u.store.InvalidateResources(rangeResources...)
	}
}

func (u *CatalogUseCase) period() (domain.Period, string) {
	r := u.DateRange()
	t := u.now()
	return r.Resolve(t), r.CacheParam(t)
}

func (u *CatalogUseCase) Campaigns(ctx context.Context) (domain.CampaignPage, error) {
	p, param := u.period()
	key := cache.NewKey(ResourceCampaigns, url.Values{"range": {param}})
	return read(ctx, u.store, key, func(ctx context.Context) (domain.CampaignPage, error) {
		return u.api.ListCampaigns(ctx, port.ListQuery{Period: p})
	})
}

func (u *CatalogUseCase) AdGroups(ctx context.Context, campaignID string) (domain.AdGroupPage, error) {
	p, param := u.period()
	key := cache.NewKey(ResourceAdGroups, url.Values{"range": {param}, "campaign_id": {campaignID}})
	return read(ctx, u.store, key, func(ctx context.Context) (domain.AdGroupPage, error) {
		return u.api.ListAdGroups(ctx, port.ListQuery{Period: p, ParentID: campaignID})
	})
}

func (u *CatalogUseCase) Ads(ctx context.Context, adGroupID string) (domain.AdPage, error) {
	p, param := u.period()
	key := cache.NewKey(ResourceAds, url.Values{"range": {param}, "ad_group_id": {adGroupID}})
	return read(ctx, u.store, key, func(ctx context.Context) (domain.AdPage, error) {
		return u.api.ListAds(ctx, port.ListQuery{Period: p, ParentID: adGroupID})
	})
}

func (u *CatalogUseCase) Pixels(ctx context.Context) (domain.PixelList, error) {
	return read(ctx, u.store, cache.NewKey(ResourcePixels, nil), u.api.ListPixels)
}

func (u *CatalogUseCase) Identities(ctx context.Context) (domain.IdentityList, error) {
	return read(ctx, u.store, cache.NewKey(ResourceIdentities, nil), u.api.ListIdentities)
}

func (u *CatalogUseCase) Leads(ctx context.Context) (domain.LeadPage, error) {
	p, param := u.period()
	key := cache.NewKey(ResourceLeads, url.Values{"range": {param}})
	return read(ctx, u.store, key, func(ctx context.Context) (domain.LeadPage, error) {
		return u.api.ListLeads(ctx, port.ListQuery{Period: p})
	})
}

func (u *CatalogUseCase) Analytics(ctx context.Context) (domain.AnalyticsReport, error) {
	p, param := u.period()
	key := cache.NewKey(ResourceAnalytics, url.Values{"range": {param}})
	return read(ctx, u.store, key, func(ctx context.Context) (domain.AnalyticsReport, error) {
		return u.api.GetAnalytics(ctx, port.ListQuery{Period: p})
	})
}

// read loads key through the store and asserts the cached type.
func read[T domain.ReadModel](ctx context.Context, store *cache.Store, key cache.Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := store.Fetch(ctx, key, func(ctx context.Context) (domain.ReadModel, error) {
		m, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		return zero, err
	}
	m, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache %s: unexpected type %T", key, v)
	}
	return m, nil
}
