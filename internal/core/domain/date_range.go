package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DatePreset enumerates the date-range choices offered by the console.
type DatePreset string

const (
	PresetToday     DatePreset = "today"
	PresetYesterday DatePreset = "yesterday"
	PresetThisWeek  DatePreset = "this_week"
	PresetThisMonth DatePreset = "this_month"
	PresetAllTime   DatePreset = "all_time"
	PresetCustom    DatePreset = "custom"
)

// DateLayout is the calendar-date format used for custom ranges and for
// query parameters.
const DateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is the shared "selected date range" that parameterises every
// date-dependent read. Start and End are only meaningful for PresetCustom.
type DateRange struct {
	Preset DatePreset `json:"preset"`
	Start  time.Time  `json:"start,omitzero"`
	End    time.Time  `json:"end,omitzero"`
}

// Period is a resolved, inclusive time window. A zero Period with Unbounded
// set means "all time".
type Period struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

// ParseDateRange builds a DateRange from its textual form. Empty preset
// defaults to today. Custom ranges require both dates in DateLayout and
// start must not be after end.
func ParseDateRange(preset, start, end string) (DateRange, error) {
	p := DatePreset(strings.ToLower(strings.TrimSpace(preset)))
	switch p {
	case "":
		return DateRange{Preset: PresetToday}, nil
	case PresetToday, PresetYesterday, PresetThisWeek, PresetThisMonth, PresetAllTime:
		return DateRange{Preset: p}, nil
	case PresetCustom:
		s, err := time.Parse(DateLayout, start)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start: %v", ErrInvalidDateRange, err)
		}
		e, err := time.Parse(DateLayout, end)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end: %v", ErrInvalidDateRange, err)
		}
		if s.After(e) {
			return DateRange{}, fmt.Errorf("%w: start after end", ErrInvalidDateRange)
		}
		return DateRange{Preset: PresetCustom, Start: s, End: e}, nil
	}
	return DateRange{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidDateRange, preset)
}

// Resolve turns the range into concrete bounds relative to t. Weeks start
// on Monday.
func (r DateRange) Resolve(t time.Time) Period {
	cfg := &now.Config{WeekStartDay: time.Monday, TimeLocation: t.Location()}
	n := cfg.With(t)
	switch r.Preset {
	case PresetYesterday:
		y := cfg.With(t.AddDate(0, 0, -1))
		return Period{Start: y.BeginningOfDay(), End: y.EndOfDay()}
	case PresetThisWeek:
		return Period{Start: n.BeginningOfWeek(), End: n.EndOfDay()}
	case PresetThisMonth:
		return Period{Start: n.BeginningOfMonth(), End: n.EndOfDay()}
	case PresetAllTime:
		return Period{Unbounded: true}
	case PresetCustom:
		return Period{
			Start: cfg.With(r.Start).BeginningOfDay(),
			End:   cfg.With(r.End).EndOfDay(),
		}
	}
	return Period{Start: n.BeginningOfDay(), End: n.EndOfDay()}
}

// CacheParam is the filter value a date range contributes to cache keys.
// Relative presets include the resolved dates so that "today" rolls over
// at midnight.
func (r DateRange) CacheParam(t time.Time) string {
	p := r.Resolve(t)
	if p.Unbounded {
		return string(PresetAllTime)
	}
	preset := r.Preset
	if preset == "" {
		preset = PresetToday
	}
	return fmt.Sprintf("%s:%s..%s", preset, p.Start.Format(DateLayout), p.End.Format(DateLayout))
}
