package domain

import "time"

// Pixel is a tracking pixel that reports conversion events.
type Pixel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Identity is the account an ad is published under.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type,omitempty"`
}

// LeadForm collects contact details for lead-generation campaigns.
type LeadForm struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Fields []string `json:"fields,omitempty"`
}

// Lead is one submission of a lead form.
type Lead struct {
	ID         string    `json:"id"`
	FormID     string    `json:"form_id"`
	CampaignID string    `json:"campaign_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}
