package wizard

import (
	"strconv"
	"time"

	"adsdesk/internal/core/domain"
)

// CopyPrefix is prepended to the name of a cloned entity.
const CopyPrefix = "Copy of "

// CloneSeed is an existing entity used to pre-populate a new draft. Kind
// selects which of the three entity fields is read; the others are ignored.
type CloneSeed struct {
	Kind     domain.EntityKind
	Campaign *domain.Campaign
	AdGroup  *domain.AdGroup
	Ad       *domain.Ad
}

// apply copies the seed into f and returns the sections it wrote. Slices are
// copied so the source entity never aliases the draft.
func (s CloneSeed) apply(f *Form) []Section {
	switch s.Kind {
	case domain.KindCampaign:
		if s.Campaign == nil {
			return nil
		}
		src := s.Campaign
		f.Campaign = CampaignFields{
			Name:       CopyPrefix + src.Name,
			Objective:  or(src.Objective, f.Campaign.Objective),
			BudgetMode: or(src.BudgetMode, f.Campaign.BudgetMode),
			Budget:     or(formatAmount(src.Budget), f.Campaign.Budget),
			CBOEnabled: src.CBOEnabled,
			IdentityID: or(src.IdentityID, f.Campaign.IdentityID),
			StartTime:  orTime(src.StartTime, f.Campaign.StartTime),
			EndTime:    orTime(src.EndTime, f.Campaign.EndTime),
		}
		return []Section{SectionCampaign}
	case domain.KindAdGroup:
		if s.AdGroup == nil {
			return nil
		}
		src := s.AdGroup
		f.AdGroup = AdGroupFields{
			Name:              CopyPrefix + src.Name,
			BudgetMode:        or(src.BudgetMode, f.AdGroup.BudgetMode),
			Budget:            or(formatAmount(src.Budget), f.AdGroup.Budget),
			BidType:           or(src.BidType, f.AdGroup.BidType),
			BidPrice:          or(formatAmount(src.BidPrice), f.AdGroup.BidPrice),
			PlacementType:     or(src.PlacementType, f.AdGroup.PlacementType),
			PixelID:           or(src.PixelID, f.AdGroup.PixelID),
			OptimizationEvent: or(src.OptimizationEvent, f.AdGroup.OptimizationEvent),
		}
		t := src.Targeting.Clone()
		f.Targeting.Gender = or(t.Gender, f.Targeting.Gender)
		if t.AgeGroups != nil {
			f.Targeting.AgeGroups = t.AgeGroups
		}
		if t.Locations != nil {
			f.Targeting.Locations = t.Locations
		}
		return []Section{SectionAdGroup, SectionTargeting}
	case domain.KindAd:
		if s.Ad == nil {
			return nil
		}
		src := s.Ad
		f.Ad = AdFields{
			Name:           CopyPrefix + src.Name,
			Format:         or(src.Format, f.Ad.Format),
			Text:           or(src.Text, f.Ad.Text),
			VideoURL:       or(src.VideoURL, f.Ad.VideoURL),
			ImageURLs:      f.Ad.ImageURLs,
			LandingPageURL: or(src.LandingPageURL, f.Ad.LandingPageURL),
			CallToAction:   or(src.CallToAction, f.Ad.CallToAction),
			LeadFormID:     or(src.LeadFormID, f.Ad.LeadFormID),
		}
		if src.ImageURLs != nil {
			f.Ad.ImageURLs = cloneStrings(src.ImageURLs)
		}
		touched := []Section{SectionAd}
		if src.IdentityID != "" {
			f.Campaign.IdentityID = src.IdentityID
			touched = append(touched, SectionCampaign)
		}
		return touched
	}
	return nil
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func orTime(v, fallback time.Time) time.Time {
	if !v.IsZero() {
		return v
	}
	return fallback
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
