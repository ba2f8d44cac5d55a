package wizard

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	c, _ := newTestController()

	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionCampaign))
	for _, s := range []Section{SectionAdGroup, SectionAd, SectionTargeting} {
		assert.Equal(t, PhaseLocked, c.Phase(s), s)
	}
	assert.False(t, c.Ready())
	assert.Equal(t, DefaultForm(), c.Form())
}

func TestCampaignCompletesAndAutoAdvances(t *testing.T) {
	c, sched := newTestController()

	require.True(t, set(t, c, SectionCampaign, "name", "Summer"))
	require.True(t, set(t, c, SectionCampaign, "objective", "CONVERSIONS"))
	require.True(t, set(t, c, SectionCampaign, "budget_mode", "DAY"))
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionCampaign))

	require.True(t, set(t, c, SectionCampaign, "identity_id", "id1"))
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionCampaign))
	assert.Equal(t, PhaseUnlockedCollapsed, c.Phase(SectionAdGroup))

	sched.Advance(DefaultAdvanceDelay - time.Millisecond)
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionCampaign))

	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionCampaign))
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionAdGroup))
	assert.Equal(t, PhaseLocked, c.Phase(SectionAd))
}

func TestAdvanceIsDebounced(t *testing.T) {
	var fired atomic.Int32
	c, sched := newTestController(WithAdvanceHook(func(Section) { fired.Add(1) }))
	fillCampaign(t, c, "TRAFFIC")

	// four more edits, one second apart, all inside the window
	for i := 0; i < 4; i++ {
		sched.Advance(time.Second)
		require.True(t, set(t, c, SectionCampaign, "name", "Summer v"+string(rune('1'+i))))
	}
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(DefaultAdvanceDelay - time.Millisecond)
	assert.Zero(t, fired.Load(), "window is measured from the last edit")

	sched.Advance(time.Millisecond)
	assert.EqualValues(t, 1, fired.Load())

	sched.Advance(time.Minute)
	assert.EqualValues(t, 1, fired.Load())
	assert.Zero(t, sched.Pending())
}

func TestEditsInOtherSectionsDoNotRestartTimer(t *testing.T) {
	c, sched := newTestController()
	fillCampaign(t, c, "TRAFFIC")
	sched.Advance(DefaultAdvanceDelay)

	require.True(t, set(t, c, SectionAdGroup, "name", "Group"))
	require.True(t, set(t, c, SectionAdGroup, "budget_mode", "DAY"))
	require.True(t, set(t, c, SectionAdGroup, "budget", "10"))
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionAdGroup))

	sched.Advance(3 * time.Second)
	// reopening the campaign does not disturb the ad group timer
	require.True(t, c.Toggle(SectionCampaign))
	sched.Advance(2 * time.Second)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionAdGroup))
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionAd))
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionCampaign), "manual reopen has no timer")
}

func TestTimerCancelledWhenIncomplete(t *testing.T) {
	c, sched := newTestController()
	fillCampaign(t, c, "TRAFFIC")
	require.Equal(t, 1, sched.Pending())

	require.True(t, set(t, c, SectionCampaign, "identity_id", ""))
	assert.Zero(t, sched.Pending())

	sched.Advance(time.Minute)
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionCampaign))
	assert.Equal(t, PhaseUnlockedCollapsed, c.Phase(SectionAdGroup), "unlocking is monotonic")
}

func TestCrossSectionFieldsRecomputeDownstream(t *testing.T) {
	c, sched := newTestController()
	fillCampaign(t, c, "TRAFFIC")
	require.True(t, set(t, c, SectionCampaign, "cbo_enabled", true))
	sched.Advance(DefaultAdvanceDelay)

	require.True(t, set(t, c, SectionAdGroup, "name", "Group"))
	require.True(t, set(t, c, SectionAdGroup, "budget_mode", "DAY"))
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionAdGroup), "budget not needed with CBO")
	assert.Equal(t, 1, sched.Pending())

	require.True(t, c.Toggle(SectionCampaign))
	require.True(t, set(t, c, SectionCampaign, "cbo_enabled", false))
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionAdGroup))
	// the campaign edit restarted the campaign timer; the ad group timer is gone
	assert.Equal(t, 1, sched.Pending())

	require.True(t, set(t, c, SectionCampaign, "objective", ObjectiveConversions))
	require.True(t, set(t, c, SectionAdGroup, "budget", "25"))
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionAdGroup), "conversions need an optimization event")
	require.True(t, set(t, c, SectionAdGroup, "optimization_event", "COMPLETE_PAYMENT"))
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionAdGroup))
}

func TestMonotonicUnlocking(t *testing.T) {
	c, sched := newTestController()
	fillCampaign(t, c, "TRAFFIC")
	sched.Advance(DefaultAdvanceDelay)
	fillAdGroup(t, c)
	sched.Advance(DefaultAdvanceDelay)
	fillAd(t, c)

	for _, s := range Sections() {
		assert.NotEqual(t, PhaseLocked, c.Phase(s), s)
	}

	// later-section edits never relock anything
	require.True(t, set(t, c, SectionAd, "text", ""))
	require.True(t, set(t, c, SectionAdGroup, "name", ""))
	for _, s := range Sections() {
		assert.NotEqual(t, PhaseLocked, c.Phase(s), s)
	}
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionCampaign))

	// an earlier section going incomplete makes later sections read-only
	// but keeps them unlocked
	require.True(t, c.Toggle(SectionCampaign))
	require.True(t, set(t, c, SectionCampaign, "name", ""))
	v := c.View()
	for _, sv := range v.Sections[1:] {
		assert.True(t, sv.Unlocked, sv.Section)
		assert.False(t, sv.Interactable, sv.Section)
		assert.True(t, sv.Collapsed, sv.Section)
	}
	assert.False(t, set(t, c, SectionAdGroup, "name", "Group"))
}

func TestLockedSectionsIgnoreInput(t *testing.T) {
	c, _ := newTestController()

	assert.False(t, set(t, c, SectionAdGroup, "name", "Group"))
	assert.False(t, c.Toggle(SectionAd))
	assert.Empty(t, c.Form().AdGroup.Name)
}

func TestManualToggle(t *testing.T) {
	c, sched := newTestController()
	require.True(t, c.Toggle(SectionCampaign))
	assert.Equal(t, PhaseUnlockedCollapsed, c.Phase(SectionCampaign))
	require.True(t, c.Toggle(SectionCampaign))
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionCampaign))

	fillCampaign(t, c, "TRAFFIC")
	require.True(t, c.Toggle(SectionAdGroup), "unlocked sections can be opened early")
	assert.Equal(t, PhaseUnlockedExpanded, c.Phase(SectionAdGroup))

	// collapsing by hand leaves the pending advance alone
	require.True(t, c.Toggle(SectionCampaign))
	assert.Equal(t, 1, sched.Pending())
	sched.Advance(DefaultAdvanceDelay)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionCampaign))
}

func TestFullWalkthrough(t *testing.T) {
	var advanced []Section
	c, sched := newTestController(WithAdvanceHook(func(s Section) { advanced = append(advanced, s) }))

	fillCampaign(t, c, ObjectiveConversions)
	sched.Advance(DefaultAdvanceDelay)
	fillAdGroup(t, c)
	sched.Advance(DefaultAdvanceDelay)
	fillAd(t, c)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionTargeting), "targeting completes with the ad")
	sched.Advance(DefaultAdvanceDelay)

	assert.True(t, c.Ready())
	assert.Equal(t, []Section{SectionCampaign, SectionAdGroup, SectionAd}, advanced)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionAd))

	require.True(t, c.Toggle(SectionTargeting))
	require.True(t, set(t, c, SectionTargeting, "locations", []string{"US", "CA"}))
	assert.Equal(t, PhaseCompletedExpanded, c.Phase(SectionTargeting))
	sched.Advance(DefaultAdvanceDelay)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionTargeting))
	assert.Equal(t, []string{"US", "CA"}, c.View().Form.Targeting.Locations)
}

func TestReadyFormMatchesDraft(t *testing.T) {
	c, sched := newTestController()
	fillCampaign(t, c, ObjectiveConversions)
	form, ready := c.ReadyForm()
	assert.False(t, ready)
	assert.Equal(t, "Summer", form.Campaign.Name)

	sched.Advance(DefaultAdvanceDelay)
	fillAdGroup(t, c)
	sched.Advance(DefaultAdvanceDelay)
	fillAd(t, c)
	form, ready = c.ReadyForm()
	require.True(t, ready)
	assert.True(t, DefaultRules().Ready(form))

	form.Ad.Name = "changed"
	assert.Equal(t, "Ad", c.Form().Ad.Name, "returned form is a copy")

	require.True(t, set(t, c, SectionAd, "name", ""))
	form, ready = c.ReadyForm()
	assert.False(t, ready)
	assert.False(t, DefaultRules().Ready(form))
}

func TestResetAndClose(t *testing.T) {
	var fired atomic.Int32
	c, sched := newTestController(WithAdvanceHook(func(Section) { fired.Add(1) }))
	fillCampaign(t, c, "TRAFFIC")

	c.Reset()
	assert.Zero(t, sched.Pending())
	assert.Equal(t, DefaultForm(), c.Form())
	assert.Equal(t, PhaseLocked, c.Phase(SectionAdGroup))

	fillCampaign(t, c, "TRAFFIC")
	c.Close()
	assert.Zero(t, sched.Pending())
	sched.Advance(time.Minute)
	assert.Zero(t, fired.Load())

	assert.False(t, set(t, c, SectionCampaign, "name", "late"))
	assert.False(t, c.Toggle(SectionCampaign))
}

func TestViewIsDetached(t *testing.T) {
	c, _ := newTestController()
	fillCampaign(t, c, "TRAFFIC")
	v := c.View()
	v.Form.Campaign.Name = "mutated"
	assert.Equal(t, "Summer", c.Form().Campaign.Name)
	assert.Len(t, v.Sections, 4)
	assert.True(t, v.Sections[0].AdvancePending)
}

func TestRealSchedulerAdvances(t *testing.T) {
	c := NewController(DefaultRules(), RealScheduler{}, 10*time.Millisecond)
	defer c.Close()
	fillCampaign(t, c, "TRAFFIC")

	require.Eventually(t, func() bool {
		return c.Phase(SectionAdGroup) == PhaseUnlockedExpanded
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, PhaseCompletedCollapsed, c.Phase(SectionCampaign))
}
