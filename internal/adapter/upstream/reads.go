package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
)

var _ port.AdsAPI = (*Client)(nil)

func periodQuery(p domain.Period) url.Values {
	q := url.Values{}
	if p.Unbounded || p.Start.IsZero() {
		q.Set("lifetime", "true")
		return q
	}
	q.Set("start_date", p.Start.Format(domain.DateLayout))
	q.Set("end_date", p.End.Format(domain.DateLayout))
	return q
}

type pageInfo struct {
	Total int `json:"total_number"`
}

func (c *Client) ListCampaigns(ctx context.Context, q port.ListQuery) (domain.CampaignPage, error) {
	const op = "list campaigns"
	env, err := c.do(ctx, op, http.MethodGet, "/campaigns", periodQuery(q.Period), nil)
	if err != nil {
		return domain.CampaignPage{}, err
	}
	var body struct {
		List     []campaignDTO `json:"list"`
		PageInfo pageInfo      `json:"page_info"`
	}
	if err = decode(op, env.data, &body); err != nil {
		return domain.CampaignPage{}, err
	}
	items, err := convertAll(op, body.List, campaignDTO.toDomain)
	if err != nil {
		return domain.CampaignPage{}, err
	}

	page := domain.CampaignPage{Items: items, Summary: domain.Summary{Total: body.PageInfo.Total}}
	if page.Summary.Total < len(items) {
		page.Summary.Total = len(items)
	}
	// the platform reports the active count separately; fall back to
	// counting the page when it does not
	if active := env.data.Get("summary.active"); active.Exists() {
		page.Summary.Active = int(active.Int())
	} else {
		for _, it := range items {
			if it.Status.Active() {
				page.Summary.Active++
			}
		}
	}
	return page, nil
}

func (c *Client) ListAdGroups(ctx context.Context, q port.ListQuery) (domain.AdGroupPage, error) {
	const op = "list ad groups"
	query := periodQuery(q.Period)
	if q.ParentID != "" {
		query.Set("campaign_id", q.ParentID)
	}
	env, err := c.do(ctx, op, http.MethodGet, "/adgroups", query, nil)
	if err != nil {
		return domain.AdGroupPage{}, err
	}
	var body struct {
		List     []adGroupDTO `json:"list"`
		PageInfo pageInfo     `json:"page_info"`
	}
	if err = decode(op, env.data, &body); err != nil {
		return domain.AdGroupPage{}, err
	}
	items, err := convertAll(op, body.List, adGroupDTO.toDomain)
	if err != nil {
		return domain.AdGroupPage{}, err
	}
	return domain.AdGroupPage{Items: items, Total: max(body.PageInfo.Total, len(items))}, nil
}

func (c *Client) ListAds(ctx context.Context, q port.ListQuery) (domain.AdPage, error) {
	const op = "list ads"
	query := periodQuery(q.Period)
	if q.ParentID != "" {
		query.Set("adgroup_id", q.ParentID)
	}
	env, err := c.do(ctx, op, http.MethodGet, "/ads", query, nil)
	if err != nil {
		return domain.AdPage{}, err
	}
	var body struct {
		List     []adDTO  `json:"list"`
		PageInfo pageInfo `json:"page_info"`
	}
	if err = decode(op, env.data, &body); err != nil {
		return domain.AdPage{}, err
	}
	items, err := convertAll(op, body.List, adDTO.toDomain)
	if err != nil {
		return domain.AdPage{}, err
	}
	return domain.AdPage{Items: items, Total: max(body.PageInfo.Total, len(items))}, nil
}

func (c *Client) ListPixels(ctx context.Context) (domain.PixelList, error) {
	const op = "list pixels"
	env, err := c.do(ctx, op, http.MethodGet, "/pixels", nil, nil)
	if err != nil {
		return domain.PixelList{}, err
	}
	var body []pixelDTO
	if err = decode(op, env.data.Get("pixels"), &body); err != nil {
		return domain.PixelList{}, err
	}
	items, err := convertAll(op, body, pixelDTO.toDomain)
	if err != nil {
		return domain.PixelList{}, err
	}
	return domain.PixelList{Items: items}, nil
}

func (c *Client) ListIdentities(ctx context.Context) (domain.IdentityList, error) {
	const op = "list identities"
	env, err := c.do(ctx, op, http.MethodGet, "/identities", nil, nil)
	if err != nil {
		return domain.IdentityList{}, err
	}
	var body []identityDTO
	if err = decode(op, env.data.Get("identity_list"), &body); err != nil {
		return domain.IdentityList{}, err
	}
	items, err := convertAll(op, body, identityDTO.toDomain)
	if err != nil {
		return domain.IdentityList{}, err
	}
	return domain.IdentityList{Items: items}, nil
}

func (c *Client) ListLeads(ctx context.Context, q port.ListQuery) (domain.LeadPage, error) {
	const op = "list leads"
	env, err := c.do(ctx, op, http.MethodGet, "/leads", periodQuery(q.Period), nil)
	if err != nil {
		return domain.LeadPage{}, err
	}
	var body struct {
		List     []leadDTO `json:"list"`
		PageInfo pageInfo  `json:"page_info"`
	}
	if err = decode(op, env.data, &body); err != nil {
		return domain.LeadPage{}, err
	}
	items, err := convertAll(op, body.List, leadDTO.toDomain)
	if err != nil {
		return domain.LeadPage{}, err
	}
	return domain.LeadPage{Items: items, Total: max(body.PageInfo.Total, len(items))}, nil
}

func (c *Client) GetAnalytics(ctx context.Context, q port.ListQuery) (domain.AnalyticsReport, error) {
	const op = "get analytics"
	env, err := c.do(ctx, op, http.MethodGet, "/reports/campaigns", periodQuery(q.Period), nil)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}
	var body struct {
		List   []analyticsRowDTO `json:"list"`
		Total  metricsDTO        `json:"total_metrics"`
		Active *int              `json:"active_campaigns"`
	}
	if err = decode(op, env.data, &body); err != nil {
		return domain.AnalyticsReport{}, err
	}
	rows, err := convertAll(op, body.List, analyticsRowDTO.toDomain)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}
	report := domain.AnalyticsReport{Rows: rows, Totals: body.Total.toDomain()}
	if body.Active != nil {
		if *body.Active < 0 {
			return domain.AnalyticsReport{}, fmt.Errorf("upstream %s: %w: negative active count", op, ErrMalformedResponse)
		}
		report.ActiveCampaigns = *body.Active
	} else {
		for _, r := range rows {
			if r.Status.Active() {
				report.ActiveCampaigns++
			}
		}
	}
	return report, nil
}
