package domain

import (
	"fmt"
	"strings"
)

// EntityKind identifies one level of the advertising hierarchy.
type EntityKind string

const (
	KindCampaign EntityKind = "campaign"
	KindAdGroup  EntityKind = "ad_group"
	KindAd       EntityKind = "ad"
)

// ParseEntityKind accepts the canonical kind names as well as the plural
// path forms used by the HTTP API ("campaigns", "ad-groups", "ads").
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "campaign", "campaigns":
		return KindCampaign, nil
	case "ad_group", "adgroup", "ad-group", "ad_groups", "adgroups", "ad-groups":
		return KindAdGroup, nil
	case "ad", "ads":
		return KindAd, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Status is the operating status of a campaign, ad group or ad as reported
// by the ads platform.
type Status string

const (
	StatusEnable  Status = "ENABLE"
	StatusDisable Status = "DISABLE"
	StatusDelete  Status = "DELETE"
)

// Active reports whether the status counts towards "active" aggregates.
func (s Status) Active() bool { return s == StatusEnable }

// ParseStatus normalises a status string. Unknown values are rejected.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusEnable, StatusDisable, StatusDelete:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// activeDelta returns the change of an "active" counter when an entity moves
// from prev to next.
func activeDelta(prev, next Status) int {
	switch {
	case !prev.Active() && next.Active():
		return 1
	case prev.Active() && !next.Active():
		return -1
	}
	return 0
}

// StatusToggleRequest asks the platform to move one entity to a new status.
// It lives only for the duration of the mutation.
type StatusToggleRequest struct {
	EntityID string
	Kind     EntityKind
	Status   Status
}
