package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"adsdesk/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// platformTime accepts the platform's "2006-01-02 15:04:05" timestamps (UTC)
// as well as RFC 3339. Empty strings and null decode to the zero time.
type platformTime time.Time

func (t *platformTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*t = platformTime{}
		return nil
	}
	for _, layout := range []string{timeLayout, time.RFC3339} {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = platformTime(v)
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unknown layout", s)
}

func (t platformTime) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(time.Time(t).UTC().Format(timeLayout))
}

var errMissingID = errors.New("missing id")

func parseStatus(s string) (domain.Status, error) {
	if s == "" {
		return domain.StatusDisable, nil
	}
	return domain.ParseStatus(s)
}

type campaignDTO struct {
	ID          string       `json:"campaign_id"`
	Name        string       `json:"campaign_name"`
	Objective   string       `json:"objective_type"`
	BudgetMode  string       `json:"budget_mode"`
	Budget      float64      `json:"budget"`
	CBO         bool         `json:"budget_optimize_on"`
	IdentityID  string       `json:"identity_id,omitempty"`
	Status      string       `json:"operation_status,omitempty"`
	StartTime   platformTime `json:"schedule_start_time"`
	EndTime     platformTime `json:"schedule_end_time"`
	CreatedTime platformTime `json:"create_time"`
}

func (d campaignDTO) toDomain() (domain.Campaign, error) {
	if d.ID == "" {
		return domain.Campaign{}, errMissingID
	}
	st, err := parseStatus(d.Status)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", d.ID, err)
	}
	return domain.Campaign{
		ID:         d.ID,
		Name:       d.Name,
		Objective:  d.Objective,
		BudgetMode: d.BudgetMode,
		Budget:     d.Budget,
		CBOEnabled: d.CBO,
		IdentityID: d.IdentityID,
		Status:     st,
		StartTime:  time.Time(d.StartTime),
		EndTime:    time.Time(d.EndTime),
		CreatedAt:  time.Time(d.CreatedTime),
	}, nil
}

func campaignFromDomain(c domain.Campaign) campaignDTO {
	return campaignDTO{
		Name:       c.Name,
		Objective:  c.Objective,
		BudgetMode: c.BudgetMode,
		Budget:     c.Budget,
		CBO:        c.CBOEnabled,
		IdentityID: c.IdentityID,
		StartTime:  platformTime(c.StartTime),
		EndTime:    platformTime(c.EndTime),
	}
}

type adGroupDTO struct {
	ID                string       `json:"adgroup_id"`
	CampaignID        string       `json:"campaign_id"`
	Name              string       `json:"adgroup_name"`
	BudgetMode        string       `json:"budget_mode"`
	Budget            float64      `json:"budget"`
	BidType           string       `json:"bid_type,omitempty"`
	BidPrice          float64      `json:"bid_price,omitempty"`
	PlacementType     string       `json:"placement_type,omitempty"`
	PixelID           string       `json:"pixel_id,omitempty"`
	OptimizationEvent string       `json:"optimization_event,omitempty"`
	Gender            string       `json:"gender,omitempty"`
	AgeGroups         []string     `json:"age_groups,omitempty"`
	Locations         []string     `json:"location_ids,omitempty"`
	Status            string       `json:"operation_status,omitempty"`
	CreatedTime       platformTime `json:"create_time"`
}

func (d adGroupDTO) toDomain() (domain.AdGroup, error) {
	if d.ID == "" {
		return domain.AdGroup{}, errMissingID
	}
	st, err := parseStatus(d.Status)
	if err != nil {
		return domain.AdGroup{}, fmt.Errorf("ad group %s: %w", d.ID, err)
	}
	return domain.AdGroup{
		ID:                d.ID,
		CampaignID:        d.CampaignID,
		Name:              d.Name,
		BudgetMode:        d.BudgetMode,
		Budget:            d.Budget,
		BidType:           d.BidType,
		BidPrice:          d.BidPrice,
		PlacementType:     d.PlacementType,
		PixelID:           d.PixelID,
		OptimizationEvent: d.OptimizationEvent,
		Targeting: domain.Targeting{
			Gender:    d.Gender,
			AgeGroups: d.AgeGroups,
			Locations: d.Locations,
		},
		Status:    st,
		CreatedAt: time.Time(d.CreatedTime),
	}, nil
}

func adGroupFromDomain(g domain.AdGroup) adGroupDTO {
	return adGroupDTO{
		Name:              g.Name,
		BudgetMode:        g.BudgetMode,
		Budget:            g.Budget,
		BidType:           g.BidType,
		BidPrice:          g.BidPrice,
		PlacementType:     g.PlacementType,
		PixelID:           g.PixelID,
		OptimizationEvent: g.OptimizationEvent,
		Gender:            g.Targeting.Gender,
		AgeGroups:         g.Targeting.AgeGroups,
		Locations:         g.Targeting.Locations,
	}
}

type adDTO struct {
	ID             string       `json:"ad_id"`
	AdGroupID      string       `json:"adgroup_id"`
	Name           string       `json:"ad_name"`
	Format         string       `json:"ad_format,omitempty"`
	Text           string       `json:"ad_text"`
	VideoURL       string       `json:"video_url,omitempty"`
	ImageURLs      []string     `json:"image_urls,omitempty"`
	LandingPageURL string       `json:"landing_page_url,omitempty"`
	CallToAction   string       `json:"call_to_action,omitempty"`
	LeadFormID     string       `json:"lead_form_id,omitempty"`
	IdentityID     string       `json:"identity_id,omitempty"`
	PixelID        string       `json:"tracking_pixel_id,omitempty"`
	Status         string       `json:"operation_status,omitempty"`
	CreatedTime    platformTime `json:"create_time"`
}

func (d adDTO) toDomain() (domain.Ad, error) {
	if d.ID == "" {
		return domain.Ad{}, errMissingID
	}
	st, err := parseStatus(d.Status)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("ad %s: %w", d.ID, err)
	}
	return domain.Ad{
		ID:             d.ID,
		AdGroupID:      d.AdGroupID,
		Name:           d.Name,
		Format:         d.Format,
		Text:           d.Text,
		VideoURL:       d.VideoURL,
		ImageURLs:      d.ImageURLs,
		LandingPageURL: d.LandingPageURL,
		CallToAction:   d.CallToAction,
		LeadFormID:     d.LeadFormID,
		IdentityID:     d.IdentityID,
		PixelID:        d.PixelID,
		Status:         st,
		CreatedAt:      time.Time(d.CreatedTime),
	}, nil
}

func adFromDomain(a domain.Ad) adDTO {
	return adDTO{
		Name:           a.Name,
		Format:         a.Format,
		Text:           a.Text,
		VideoURL:       a.VideoURL,
		ImageURLs:      a.ImageURLs,
		LandingPageURL: a.LandingPageURL,
		CallToAction:   a.CallToAction,
		LeadFormID:     a.LeadFormID,
		IdentityID:     a.IdentityID,
		PixelID:        a.PixelID,
	}
}

type pixelDTO struct {
	ID          string       `json:"pixel_id"`
	Name        string       `json:"pixel_name"`
	Code        string       `json:"pixel_code"`
	CreatedTime platformTime `json:"create_time"`
}

func (d pixelDTO) toDomain() (domain.Pixel, error) {
	if d.ID == "" {
		return domain.Pixel{}, errMissingID
	}
	return domain.Pixel{ID: d.ID, Name: d.Name, Code: d.Code, CreatedAt: time.Time(d.CreatedTime)}, nil
}

type identityDTO struct {
	ID          string `json:"identity_id"`
	DisplayName string `json:"display_name"`
	Type        string `json:"identity_type"`
}

func (d identityDTO) toDomain() (domain.Identity, error) {
	if d.ID == "" {
		return domain.Identity{}, errMissingID
	}
	return domain.Identity{ID: d.ID, DisplayName: d.DisplayName, Type: d.Type}, nil
}

type leadFormDTO struct {
	ID     string   `json:"form_id"`
	Name   string   `json:"form_name"`
	Fields []string `json:"fields"`
}

func (d leadFormDTO) toDomain() (domain.LeadForm, error) {
	if d.ID == "" {
		return domain.LeadForm{}, errMissingID
	}
	return domain.LeadForm{ID: d.ID, Name: d.Name, Fields: d.Fields}, nil
}

type leadDTO struct {
	ID          string       `json:"lead_id"`
	FormID      string       `json:"form_id"`
	CampaignID  string       `json:"campaign_id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	CreatedTime platformTime `json:"create_time"`
}

func (d leadDTO) toDomain() (domain.Lead, error) {
	if d.ID == "" {
		return domain.Lead{}, errMissingID
	}
	return domain.Lead{
		ID:         d.ID,
		FormID:     d.FormID,
		CampaignID: d.CampaignID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		CreatedAt:  time.Time(d.CreatedTime),
	}, nil
}

type metricsDTO struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend,string"`
}

func (d metricsDTO) toDomain() domain.Metrics {
	return domain.Metrics{Impressions: d.Impressions, Clicks: d.Clicks, Conversions: d.Conversions, Spend: d.Spend}
}

type analyticsRowDTO struct {
	CampaignID   string     `json:"campaign_id"`
	CampaignName string     `json:"campaign_name"`
	Status       string     `json:"operation_status"`
	Metrics      metricsDTO `json:"metrics"`
}

func (d analyticsRowDTO) toDomain() (domain.AnalyticsRow, error) {
	if d.CampaignID == "" {
		return domain.AnalyticsRow{}, errMissingID
	}
	st, err := parseStatus(d.Status)
	if err != nil {
		return domain.AnalyticsRow{}, fmt.Errorf("analytics row %s: %w", d.CampaignID, err)
	}
	return domain.AnalyticsRow{
		CampaignID:   d.CampaignID,
		CampaignName: d.CampaignName,
		Status:       st,
		Metrics:      d.Metrics.toDomain(),
	}, nil
}

// convertAll validates every item of a list. One invalid item rejects the
// whole response.
func convertAll[D any, T any](op string, in []D, conv func(D) (T, error)) ([]T, error) {
	out := make([]T, 0, len(in))
	for i, d := range in {
		v, err := conv(d)
		if err != nil {
			return nil, fmt.Errorf("upstream %s: %w: item %d: %v", op, ErrMalformedResponse, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
