package wizard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid field value")
)

// Change is a parsed, typed edit of a single form field. Changes are built
// with ParseChange so the controller never sees untyped input.
type Change struct {
	Section Section
	Field   string
	set     func(*Form)
}

type fieldParser func(raw json.RawMessage) (func(*Form), error)

var fields = map[Section]map[string]fieldParser{
	SectionCampaign: {
		"name":        text(func(f *Form) *string { return &f.Campaign.Name }),
		"objective":   text(func(f *Form) *string { return &f.Campaign.Objective }),
		"budget_mode": text(func(f *Form) *string { return &f.Campaign.BudgetMode }),
		"budget":      text(func(f *Form) *string { return &f.Campaign.Budget }),
		"cbo_enabled": flag(func(f *Form) *bool { return &f.Campaign.CBOEnabled }),
		"identity_id": text(func(f *Form) *string { return &f.Campaign.IdentityID }),
		"start_time":  timestamp(func(f *Form) *time.Time { return &f.Campaign.StartTime }),
		"end_time":    timestamp(func(f *Form) *time.Time { return &f.Campaign.EndTime }),
	},
	SectionAdGroup: {
		"name":               text(func(f *Form) *string { return &f.AdGroup.Name }),
		"budget_mode":        text(func(f *Form) *string { return &f.AdGroup.BudgetMode }),
		"budget":             text(func(f *Form) *string { return &f.AdGroup.Budget }),
		"bid_type":           text(func(f *Form) *string { return &f.AdGroup.BidType }),
		"bid_price":          text(func(f *Form) *string { return &f.AdGroup.BidPrice }),
		"placement_type":     text(func(f *Form) *string { return &f.AdGroup.PlacementType }),
		"pixel_id":           text(func(f *Form) *string { return &f.AdGroup.PixelID }),
		"optimization_event": text(func(f *Form) *string { return &f.AdGroup.OptimizationEvent }),
	},
	SectionAd: {
		"name":             text(func(f *Form) *string { return &f.Ad.Name }),
		"format":           text(func(f *Form) *string { return &f.Ad.Format }),
		"text":             text(func(f *Form) *string { return &f.Ad.Text }),
		"video_url":        text(func(f *Form) *string { return &f.Ad.VideoURL }),
		"image_urls":       list(func(f *Form) *[]string { return &f.Ad.ImageURLs }),
		"landing_page_url": text(func(f *Form) *string { return &f.Ad.LandingPageURL }),
		"call_to_action":   text(func(f *Form) *string { return &f.Ad.CallToAction }),
		"lead_form_id":     text(func(f *Form) *string { return &f.Ad.LeadFormID }),
	},
	SectionTargeting: {
		"gender":     text(func(f *Form) *string { return &f.Targeting.Gender }),
		"age_groups": list(func(f *Form) *[]string { return &f.Targeting.AgeGroups }),
		"locations":  list(func(f *Form) *[]string { return &f.Targeting.Locations }),
	},
}

// ParseChange validates raw JSON input for a field and returns the typed
// change. An empty or null value clears the field.
func ParseChange(section Section, field string, raw json.RawMessage) (Change, error) {
	byField, ok := fields[section]
	if !ok {
		return Change{}, fmt.Errorf("%w: section %v", ErrUnknownField, section)
	}
	parse, ok := byField[field]
	if !ok {
		return Change{}, fmt.Errorf("%w: %v.%s", ErrUnknownField, section, field)
	}
	set, err := parse(raw)
	if err != nil {
		return Change{}, fmt.Errorf("%w: %v.%s: %v", ErrInvalidValue, section, field, err)
	}
	return Change{Section: section, Field: field, set: set}, nil
}

// FieldNames lists the editable fields of a section in sorted order.
func FieldNames(section Section) []string {
	names := make([]string, 0, len(fields[section]))
	for name := range fields[section] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func text(ref func(*Form) *string) fieldParser {
	return func(raw json.RawMessage) (func(*Form), error) {
		var v string
		if !isNull(raw) {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			var decoded interface{}
			if err := dec.Decode(&decoded); err != nil {
				return nil, err
			}
			switch x := decoded.(type) {
			case string:
				v = x
			case json.Number:
				v = x.String()
			default:
				return nil, fmt.Errorf("expected string, got %s", raw)
			}
		}
		return func(f *Form) { *ref(f) = v }, nil
	}
}

func flag(ref func(*Form) *bool) fieldParser {
	return func(raw json.RawMessage) (func(*Form), error) {
		var v bool
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		return func(f *Form) { *ref(f) = v }, nil
	}
}

func list(ref func(*Form) *[]string) fieldParser {
	return func(raw json.RawMessage) (func(*Form), error) {
		var v []string
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		return func(f *Form) { *ref(f) = cloneStrings(v) }, nil
	}
}

func timestamp(ref func(*Form) *time.Time) fieldParser {
	return func(raw json.RawMessage) (func(*Form), error) {
		var s string
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, err
			}
		}
		var v time.Time
		if s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, err
			}
			v = t
		}
		return func(f *Form) { *ref(f) = v }, nil
	}
}
