package domain

import "time"

// Campaign represents an advertising campaign on the ads platform.
// Budgets are expressed in the advertiser's account currency.
type Campaign struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Objective  string    `json:"objective"`
	BudgetMode string    `json:"budget_mode"`
	Budget     float64   `json:"budget"`
	CBOEnabled bool      `json:"cbo_enabled"` // campaign budget optimization
	IdentityID string    `json:"identity_id,omitempty"`
	Status     Status    `json:"status"`
	StartTime  time.Time `json:"start_time,omitzero"`
	EndTime    time.Time `json:"end_time,omitzero"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

// AdGroup is the middle level of the hierarchy. It carries delivery
// settings, tracking and audience targeting.
type AdGroup struct {
	ID                string    `json:"id"`
	CampaignID        string    `json:"campaign_id"`
	Name              string    `json:"name"`
	BudgetMode        string    `json:"budget_mode"`
	Budget            float64   `json:"budget"`
	BidType           string    `json:"bid_type,omitempty"`
	BidPrice          float64   `json:"bid_price,omitempty"`
	PlacementType     string    `json:"placement_type,omitempty"`
	PixelID           string    `json:"pixel_id,omitempty"`
	OptimizationEvent string    `json:"optimization_event,omitempty"`
	Targeting         Targeting `json:"targeting"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at,omitzero"`
}

// Ad is a single creative shown to users.
type Ad struct {
	ID             string    `json:"id"`
	AdGroupID      string    `json:"ad_group_id"`
	Name           string    `json:"name"`
	Format         string    `json:"format,omitempty"`
	Text           string    `json:"text"`
	VideoURL       string    `json:"video_url,omitempty"`
	ImageURLs      []string  `json:"image_urls,omitempty"`
	LandingPageURL string    `json:"landing_page_url,omitempty"`
	CallToAction   string    `json:"call_to_action,omitempty"`
	LeadFormID     string    `json:"lead_form_id,omitempty"`
	IdentityID     string    `json:"identity_id,omitempty"`
	PixelID        string    `json:"pixel_id,omitempty"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}
