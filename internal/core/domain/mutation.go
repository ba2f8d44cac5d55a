package domain

import (
	"errors"
	"time"
)

// CompositeCreate creates a campaign, its first ad group and its first ad in
// one upstream call.
type CompositeCreate struct {
	Campaign Campaign `json:"campaign"`
	AdGroup  AdGroup  `json:"ad_group"`
	Ad       Ad       `json:"ad"`
}

// CompositeResult carries the ids assigned by the platform.
type CompositeResult struct {
	CampaignID string `json:"campaign_id"`
	AdGroupID  string `json:"ad_group_id"`
	AdID       string `json:"ad_id"`
	Message    string `json:"message,omitempty"`
}

// PixelCreate is the payload for creating a tracking pixel.
type PixelCreate struct {
	Name string `json:"name"`
}

// LeadFormCreate is the payload for creating a lead form.
type LeadFormCreate struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// MutationError is implemented by collaborator errors that carry a
// human-readable message. Rejected reports whether the collaborator answered
// (application-level failure) as opposed to never answering (transport).
type MutationError interface {
	error
	Rejected() bool
	UserMessage() string
}

// UserMessage picks the text shown to the user for a failed mutation
// described by action (e.g. "update status"). A rejection surfaces the
// collaborator's message verbatim when present; anything else is treated as
// a transport failure.
func UserMessage(err error, action string) string {
	var me MutationError
	if errors.As(err, &me) && me.Rejected() {
		if msg := me.UserMessage(); msg != "" {
			return msg
		}
		return "Failed to " + action
	}
	return "Network error: could not " + action + ", please retry"
}

// NotificationLevel is the severity of a user-visible notification.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Notification is a user-visible message produced at a mutation boundary.
type Notification struct {
	ID         string            `json:"id"`
	Level      NotificationLevel `json:"level"`
	Action     string            `json:"action"`
	EntityKind EntityKind        `json:"entity_kind,omitempty"`
	EntityID   string            `json:"entity_id,omitempty"`
	Message    string            `json:"message"`
	CreatedAt  time.Time         `json:"created_at"`
}
