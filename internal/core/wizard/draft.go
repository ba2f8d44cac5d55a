package wizard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"adsdesk/internal/core/domain"
)

// Draft converts the form into the payload of the composite create call.
// Numeric fields are parsed here; an empty optional amount becomes zero.
func (f Form) Draft() (domain.CompositeCreate, error) {
	campaignBudget, err := amount("campaign.budget", f.Campaign.Budget)
	if err != nil {
		return domain.CompositeCreate{}, err
	}
	groupBudget, err := amount("ad_group.budget", f.AdGroup.Budget)
	if err != nil {
		return domain.CompositeCreate{}, err
	}
	bid, err := amount("ad_group.bid_price", f.AdGroup.BidPrice)
	if err != nil {
		return domain.CompositeCreate{}, err
	}
	if f.Campaign.CBOEnabled {
		groupBudget = 0
	}
	return domain.CompositeCreate{
		Campaign: domain.Campaign{
			Name:       strings.TrimSpace(f.Campaign.Name),
			Objective:  f.Campaign.Objective,
			BudgetMode: f.Campaign.BudgetMode,
			Budget:     campaignBudget,
			CBOEnabled: f.Campaign.CBOEnabled,
			IdentityID: f.Campaign.IdentityID,
			StartTime:  f.Campaign.StartTime,
			EndTime:    f.Campaign.EndTime,
		},
		AdGroup: domain.AdGroup{
			Name:              strings.TrimSpace(f.AdGroup.Name),
			BudgetMode:        f.AdGroup.BudgetMode,
			Budget:            groupBudget,
			BidType:           f.AdGroup.BidType,
			BidPrice:          bid,
			PlacementType:     f.AdGroup.PlacementType,
			PixelID:           f.AdGroup.PixelID,
			OptimizationEvent: f.AdGroup.OptimizationEvent,
			Targeting: domain.Targeting{
				Gender:    f.Targeting.Gender,
				AgeGroups: cloneStrings(f.Targeting.AgeGroups),
				Locations: cloneStrings(f.Targeting.Locations),
			},
		},
		Ad: domain.Ad{
			Name:           strings.TrimSpace(f.Ad.Name),
			Format:         f.Ad.Format,
			Text:           f.Ad.Text,
			VideoURL:       f.Ad.VideoURL,
			ImageURLs:      cloneStrings(f.Ad.ImageURLs),
			LandingPageURL: f.Ad.LandingPageURL,
			CallToAction:   f.Ad.CallToAction,
			LeadFormID:     f.Ad.LeadFormID,
			IdentityID:     f.Campaign.IdentityID,
		},
	}, nil
}

func amount(field, v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %s: %q is not a valid amount", ErrInvalidValue, field, v)
	}
	return n, nil
}
