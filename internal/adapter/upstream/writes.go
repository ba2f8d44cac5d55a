package upstream

import (
	"context"
	"fmt"
	"net/http"

	"adsdesk/internal/core/domain"
)

func (c *Client) CreateComposite(ctx context.Context, req domain.CompositeCreate) (domain.CompositeResult, error) {
	const op = "create campaign"
	body := struct {
		Campaign campaignDTO `json:"campaign"`
		AdGroup  adGroupDTO  `json:"adgroup"`
		Ad       adDTO       `json:"ad"`
	}{
		Campaign: campaignFromDomain(req.Campaign),
		AdGroup:  adGroupFromDomain(req.AdGroup),
		Ad:       adFromDomain(req.Ad),
	}
	env, err := c.do(ctx, op, http.MethodPost, "/campaigns/composite", nil, body)
	if err != nil {
		return domain.CompositeResult{}, err
	}
	res := domain.CompositeResult{
		CampaignID: env.data.Get("campaign_id").String(),
		AdGroupID:  env.data.Get("adgroup_id").String(),
		AdID:       env.data.Get("ad_id").String(),
		Message:    env.message,
	}
	if res.CampaignID == "" {
		return domain.CompositeResult{}, fmt.Errorf("upstream %s: %w: missing campaign_id", op, ErrMalformedResponse)
	}
	return res, nil
}

func (c *Client) CreatePixel(ctx context.Context, req domain.PixelCreate) (domain.Pixel, error) {
	const op = "create pixel"
	env, err := c.do(ctx, op, http.MethodPost, "/pixels", nil, map[string]string{"pixel_name": req.Name})
	if err != nil {
		return domain.Pixel{}, err
	}
	var dto pixelDTO
	if err = decode(op, env.data, &dto); err != nil {
		return domain.Pixel{}, err
	}
	p, err := dto.toDomain()
	if err != nil {
		return domain.Pixel{}, fmt.Errorf("upstream %s: %w: %v", op, ErrMalformedResponse, err)
	}
	return p, nil
}

func (c *Client) CreateLeadForm(ctx context.Context, req domain.LeadFormCreate) (domain.LeadForm, error) {
	const op = "create lead form"
	payload := leadFormDTO{Name: req.Name, Fields: req.Fields}
	env, err := c.do(ctx, op, http.MethodPost, "/lead-forms", nil, payload)
	if err != nil {
		return domain.LeadForm{}, err
	}
	var dto leadFormDTO
	if err = decode(op, env.data, &dto); err != nil {
		return domain.LeadForm{}, err
	}
	f, err := dto.toDomain()
	if err != nil {
		return domain.LeadForm{}, fmt.Errorf("upstream %s: %w: %v", op, ErrMalformedResponse, err)
	}
	return f, nil
}

// statusPath maps entity kinds to the platform's collection names.
var statusPath = map[domain.EntityKind]string{
	domain.KindCampaign: "campaigns",
	domain.KindAdGroup:  "adgroups",
	domain.KindAd:       "ads",
}

func (c *Client) UpdateStatus(ctx context.Context, req domain.StatusToggleRequest) (string, error) {
	const op = "update status"
	coll, ok := statusPath[req.Kind]
	if !ok {
		return "", fmt.Errorf("upstream %s: unknown entity kind %q", op, req.Kind)
	}
	path := "/" + coll + "/" + req.EntityID + "/status"
	env, err := c.do(ctx, op, http.MethodPut, path, nil, map[string]string{"operation_status": string(req.Status)})
	if err != nil {
		return "", err
	}
	return env.message, nil
}

func (c *Client) AttachPixel(ctx context.Context, adID, pixelID string) (string, error) {
	const op = "attach pixel"
	path := "/ads/" + adID + "/pixel"
	env, err := c.do(ctx, op, http.MethodPut, path, nil, map[string]string{"tracking_pixel_id": pixelID})
	if err != nil {
		return "", err
	}
	return env.message, nil
}

func (c *Client) DetachPixel(ctx context.Context, adID string) (string, error) {
	const op = "detach pixel"
	env, err := c.do(ctx, op, http.MethodDelete, "/ads/"+adID+"/pixel", nil, nil)
	if err != nil {
		return "", err
	}
	return env.message, nil
}
