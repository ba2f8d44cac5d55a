// Package wizard implements the campaign-creation wizard: a strictly ordered
// set of form sections with derived completion, gated unlocking and a
// debounced auto-advance between sections.
package wizard

import (
	"fmt"
	"strings"
)

// Section is one step of the wizard. Sections are ordered by value.
type Section int

const (
	SectionCampaign Section = iota
	SectionAdGroup
	SectionAd
	SectionTargeting

	sectionCount
)

var sectionNames = [sectionCount]string{"campaign", "ad_group", "ad", "targeting"}

// Sections lists every section in wizard order.
func Sections() []Section {
	return []Section{SectionCampaign, SectionAdGroup, SectionAd, SectionTargeting}
}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

func (s Section) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseSection accepts the names produced by Section.String.
func ParseSection(name string) (Section, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "adgroup" || n == "ad-group" {
		n = "ad_group"
	}
	for i, sn := range sectionNames {
		if sn == n {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", name)
}

// Phase is the lifecycle state of a section as seen by the user.
type Phase string

const (
	PhaseLocked             Phase = "LOCKED"
	PhaseUnlockedCollapsed  Phase = "UNLOCKED_COLLAPSED"
	PhaseUnlockedExpanded   Phase = "UNLOCKED_EXPANDED"
	PhaseCompletedExpanded  Phase = "COMPLETED_EXPANDED"
	PhaseCompletedCollapsed Phase = "COMPLETED_COLLAPSED"
)

// SectionView is the derived, read-only state of one section.
type SectionView struct {
	Section        Section `json:"section"`
	Phase          Phase   `json:"phase"`
	Unlocked       bool    `json:"unlocked"`
	Interactable   bool    `json:"interactable"`
	Collapsed      bool    `json:"collapsed"`
	Completed      bool    `json:"completed"`
	AdvancePending bool    `json:"advance_pending"`
}

// View is a point-in-time snapshot of the whole wizard.
type View struct {
	Form     Form          `json:"form"`
	Sections []SectionView `json:"sections"`
	Ready    bool          `json:"ready"`
}
