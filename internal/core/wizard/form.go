package wizard

import "time"

// Form is the draft being built across the wizard sections. It is a value:
// the controller replaces it wholesale on every change, so a Form obtained
// from the controller is never modified behind the caller's back.
type Form struct {
	Campaign  CampaignFields  `json:"campaign"`
	AdGroup   AdGroupFields   `json:"ad_group"`
	Ad        AdFields        `json:"ad"`
	Targeting TargetingFields `json:"targeting"`
}

// Numeric inputs are kept as the text the user typed and only parsed when
// the draft is submitted.
type CampaignFields struct {
	Name       string    `json:"name"`
	Objective  string    `json:"objective"`
	BudgetMode string    `json:"budget_mode"`
	Budget     string    `json:"budget"`
	CBOEnabled bool      `json:"cbo_enabled"`
	IdentityID string    `json:"identity_id"`
	StartTime  time.Time `json:"start_time,omitzero"`
	EndTime    time.Time `json:"end_time,omitzero"`
}

type AdGroupFields struct {
	Name              string `json:"name"`
	BudgetMode        string `json:"budget_mode"`
	Budget            string `json:"budget"`
	BidType           string `json:"bid_type"`
	BidPrice          string `json:"bid_price"`
	PlacementType     string `json:"placement_type"`
	PixelID           string `json:"pixel_id"`
	OptimizationEvent string `json:"optimization_event"`
}

type AdFields struct {
	Name           string   `json:"name"`
	Format         string   `json:"format"`
	Text           string   `json:"text"`
	VideoURL       string   `json:"video_url"`
	ImageURLs      []string `json:"image_urls"`
	LandingPageURL string   `json:"landing_page_url"`
	CallToAction   string   `json:"call_to_action"`
	LeadFormID     string   `json:"lead_form_id"`
}

type TargetingFields struct {
	Gender    string   `json:"gender"`
	AgeGroups []string `json:"age_groups"`
	Locations []string `json:"locations"`
}

// Defaults applied when the wizard opens. None of them satisfies a
// completion predicate on its own.
const (
	DefaultBidType       = "BID_TYPE_NO_BID"
	DefaultPlacementType = "PLACEMENT_TYPE_AUTOMATIC"
	DefaultAdFormat      = "SINGLE_VIDEO"
	DefaultCallToAction  = "LEARN_MORE"
	DefaultGender        = "GENDER_UNLIMITED"
)

// DefaultForm returns the empty draft shown when the wizard opens.
func DefaultForm() Form {
	return Form{
		AdGroup: AdGroupFields{
			BidType:       DefaultBidType,
			PlacementType: DefaultPlacementType,
		},
		Ad: AdFields{
			Format:       DefaultAdFormat,
			CallToAction: DefaultCallToAction,
		},
		Targeting: TargetingFields{Gender: DefaultGender},
	}
}

// Clone returns a deep copy of f.
func (f Form) Clone() Form {
	f.Ad.ImageURLs = cloneStrings(f.Ad.ImageURLs)
	f.Targeting.AgeGroups = cloneStrings(f.Targeting.AgeGroups)
	f.Targeting.Locations = cloneStrings(f.Targeting.Locations)
	return f
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
