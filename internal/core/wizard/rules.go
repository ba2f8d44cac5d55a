package wizard

import (
	"slices"
	"strings"
)

// Objective names used by the default rules.
const (
	ObjectiveLeadGeneration = "LEAD_GENERATION"
	ObjectiveConversions    = "CONVERSIONS"
	ObjectiveWebConversions = "WEB_CONVERSIONS"
	ObjectiveProductSales   = "PRODUCT_SALES"
)

// Rules holds the objective-dependent parts of the completion predicates.
// They are configuration rather than code so the mapping stays auditable.
type Rules struct {
	// LeadObjective switches the ad section from landing page to lead form
	// and removes pixel/optimization requirements from the ad group.
	LeadObjective string
	// OptimizationObjectives lists objectives whose ad group must name an
	// optimization event.
	OptimizationObjectives []string
}

// DefaultRules returns the mapping used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		LeadObjective: ObjectiveLeadGeneration,
		OptimizationObjectives: []string{
			ObjectiveConversions,
			ObjectiveWebConversions,
			ObjectiveProductSales,
		},
	}
}

func (r Rules) isLead(objective string) bool {
	return r.LeadObjective != "" && strings.EqualFold(objective, r.LeadObjective)
}

// RequiresOptimization reports whether the ad group must carry an
// optimization event for the given campaign objective.
func (r Rules) RequiresOptimization(objective string) bool {
	if objective == "" || r.isLead(objective) {
		return false
	}
	return slices.ContainsFunc(r.OptimizationObjectives, func(o string) bool {
		return strings.EqualFold(o, objective)
	})
}

// Complete is the completion predicate of a section. It is pure: the result
// depends only on the form and the rules.
func (r Rules) Complete(s Section, f Form) bool {
	switch s {
	case SectionCampaign:
		c := f.Campaign
		return present(c.Name, c.Objective, c.BudgetMode, c.IdentityID)
	case SectionAdGroup:
		g := f.AdGroup
		if !present(g.Name, g.BudgetMode) {
			return false
		}
		if !f.Campaign.CBOEnabled && !present(g.Budget) {
			return false
		}
		if r.RequiresOptimization(f.Campaign.Objective) && !present(g.OptimizationEvent) {
			return false
		}
		return true
	case SectionAd:
		a := f.Ad
		if !present(a.Name, a.Text) || !hasMedia(a) {
			return false
		}
		if r.isLead(f.Campaign.Objective) {
			return present(a.LeadFormID)
		}
		return present(a.LandingPageURL)
	case SectionTargeting:
		// targeting has no required fields of its own
		return r.Complete(SectionAd, f)
	}
	return false
}

// Ready is the root completion check gating submission.
func (r Rules) Ready(f Form) bool {
	for _, s := range Sections() {
		if !r.Complete(s, f) {
			return false
		}
	}
	return true
}

func hasMedia(a AdFields) bool {
	if present(a.VideoURL) {
		return true
	}
	return slices.ContainsFunc(a.ImageURLs, func(u string) bool { return present(u) })
}

func present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
