package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeCampaign() Form {
	f := DefaultForm()
	f.Campaign = CampaignFields{Name: "Summer", Objective: "TRAFFIC", BudgetMode: "DAY", IdentityID: "id1"}
	return f
}

func TestCampaignCompletion(t *testing.T) {
	r := DefaultRules()
	f := completeCampaign()
	assert.True(t, r.Complete(SectionCampaign, f))

	f.Campaign.IdentityID = "  "
	assert.False(t, r.Complete(SectionCampaign, f))
	assert.False(t, r.Complete(SectionCampaign, DefaultForm()))
}

func TestAdGroupBudgetExemptWithCBO(t *testing.T) {
	r := DefaultRules()
	f := completeCampaign()
	f.AdGroup.Name = "Group"
	f.AdGroup.BudgetMode = "DAY"
	f.AdGroup.Budget = ""

	f.Campaign.CBOEnabled = true
	assert.True(t, r.Complete(SectionAdGroup, f))

	f.Campaign.CBOEnabled = false
	assert.False(t, r.Complete(SectionAdGroup, f))

	f.AdGroup.Budget = "20"
	assert.True(t, r.Complete(SectionAdGroup, f))
}

func TestAdGroupOptimizationEventByObjective(t *testing.T) {
	r := DefaultRules()
	f := completeCampaign()
	f.AdGroup = AdGroupFields{Name: "Group", BudgetMode: "DAY", Budget: "10"}

	f.Campaign.Objective = ObjectiveConversions
	assert.False(t, r.Complete(SectionAdGroup, f))
	f.AdGroup.OptimizationEvent = "COMPLETE_PAYMENT"
	assert.True(t, r.Complete(SectionAdGroup, f))

	f.AdGroup.OptimizationEvent = ""
	f.Campaign.Objective = ObjectiveLeadGeneration
	assert.True(t, r.Complete(SectionAdGroup, f))
}

func TestAdCompletionBranchesOnObjective(t *testing.T) {
	r := DefaultRules()
	f := completeCampaign()
	f.Ad = AdFields{Name: "Ad", Text: "Hello", ImageURLs: []string{"", "https://cdn/i.png"}}

	assert.False(t, r.Complete(SectionAd, f), "landing page required for non-lead objectives")
	f.Ad.LandingPageURL = "https://shop"
	assert.True(t, r.Complete(SectionAd, f))

	f.Campaign.Objective = ObjectiveLeadGeneration
	assert.False(t, r.Complete(SectionAd, f), "lead form replaces the landing page")
	f.Ad.LeadFormID = "form1"
	assert.True(t, r.Complete(SectionAd, f))

	f.Ad.ImageURLs = nil
	assert.False(t, r.Complete(SectionAd, f), "media is required")
}

func TestTargetingMirrorsAd(t *testing.T) {
	r := DefaultRules()
	f := completeCampaign()
	assert.Equal(t, r.Complete(SectionAd, f), r.Complete(SectionTargeting, f))

	f.Ad = AdFields{Name: "Ad", Text: "Hi", VideoURL: "v", LandingPageURL: "l"}
	f.Targeting = TargetingFields{}
	assert.True(t, r.Complete(SectionTargeting, f))
}

func TestRulesAreConfigurable(t *testing.T) {
	r := Rules{LeadObjective: "LEADS", OptimizationObjectives: []string{"traffic"}}
	assert.True(t, r.RequiresOptimization("TRAFFIC"))
	assert.False(t, r.RequiresOptimization(ObjectiveConversions))
	assert.False(t, r.RequiresOptimization("LEADS"))
	assert.False(t, r.RequiresOptimization(""))
}

func TestReady(t *testing.T) {
	r := DefaultRules()
	f := completeCampaign()
	assert.False(t, r.Ready(f))

	f.AdGroup = AdGroupFields{Name: "G", BudgetMode: "DAY", Budget: "5"}
	f.Ad = AdFields{Name: "A", Text: "T", VideoURL: "v", LandingPageURL: "l"}
	assert.True(t, r.Ready(f))
}
