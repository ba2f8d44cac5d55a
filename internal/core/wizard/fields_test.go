package wizard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChangeRejectsBadInput(t *testing.T) {
	_, err := ParseChange(SectionCampaign, "colour", json.RawMessage(`"red"`))
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = ParseChange(SectionCampaign, "cbo_enabled", json.RawMessage(`"yes"`))
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseChange(SectionCampaign, "name", json.RawMessage(`{"a":1}`))
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseChange(SectionCampaign, "start_time", json.RawMessage(`"tomorrow"`))
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseChange(Section(9), "name", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseChangeValues(t *testing.T) {
	f := DefaultForm()

	ch, err := ParseChange(SectionAdGroup, "budget", json.RawMessage(`12.50`))
	require.NoError(t, err)
	ch.set(&f)
	assert.Equal(t, "12.50", f.AdGroup.Budget)

	ch, err = ParseChange(SectionCampaign, "start_time", json.RawMessage(`"2026-11-01T08:00:00Z"`))
	require.NoError(t, err)
	ch.set(&f)
	assert.Equal(t, time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC), f.Campaign.StartTime)

	ch, err = ParseChange(SectionTargeting, "age_groups", json.RawMessage(`["AGE_18_24"]`))
	require.NoError(t, err)
	ch.set(&f)
	assert.Equal(t, []string{"AGE_18_24"}, f.Targeting.AgeGroups)

	ch, err = ParseChange(SectionTargeting, "gender", json.RawMessage(`null`))
	require.NoError(t, err)
	ch.set(&f)
	assert.Empty(t, f.Targeting.Gender)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"age_groups", "gender", "locations"}, FieldNames(SectionTargeting))
	assert.Contains(t, FieldNames(SectionCampaign), "cbo_enabled")
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("ad-group")
	require.NoError(t, err)
	assert.Equal(t, SectionAdGroup, s)
	assert.Equal(t, "targeting", SectionTargeting.String())
	_, err = ParseSection("billing")
	assert.Error(t, err)
}
