// Package daterange resolves optional start/end date inputs into a validated
// query window according to a per-query policy.
package daterange

import (
	"fmt"
	"time"

	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

// DateLayout is the accepted input and echoed output format for dates.
const DateLayout = "2006-01-02"

// Policy bounds a query window. Zero values disable the corresponding rule.
type Policy struct {
	// DefaultLookbackDays is subtracted from today when no start is supplied.
	DefaultLookbackDays int
	// MaxSpanDays caps end - start.
	MaxSpanDays int
	// MaxAgeDays rejects starts older than today - MaxAgeDays.
	MaxAgeDays int
}

// Per-kind policies.
var (
	AttendancePolicy    = Policy{DefaultLookbackDays: 7, MaxAgeDays: 90}
	SupportReportPolicy = Policy{DefaultLookbackDays: 7, MaxSpanDays: 365}
	LessonPlanPolicy    = Policy{DefaultLookbackDays: 7, MaxSpanDays: 365}
	AssessmentPolicy    = Policy{DefaultLookbackDays: 7, MaxSpanDays: 365}
)

// Window is a validated, midnight-truncated [Start, End] range.
type Window struct {
	Start        time.Time
	End          time.Time
	DurationDays int
}

// StartString formats the start date.
func (w Window) StartString() string { return w.Start.Format(DateLayout) }

// EndString formats the end date.
func (w Window) EndString() string { return w.End.Format(DateLayout) }

// EndExclusive returns midnight of the day after End, for timestamp columns.
func (w Window) EndExclusive() time.Time { return w.End.AddDate(0, 0, 1) }

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Resolve validates the raw inputs against policy relative to now.
// Nil or empty strings are treated as absent.
func Resolve(rawStart, rawEnd *string, now time.Time, policy Policy) (Window, error) {
	today := Midnight(now)

	start, err := parseDate(rawStart, "start_date", today.Location())
	if err != nil {
		return Window{}, err
	}
	end, err := parseDate(rawEnd, "end_date", today.Location())
	if err != nil {
		return Window{}, err
	}
	if start == nil {
		s := today.AddDate(0, 0, -policy.DefaultLookbackDays)
		start = &s
	}
	if end == nil {
		end = &today
	}

	if policy.MaxAgeDays > 0 {
		floor := today.AddDate(0, 0, -policy.MaxAgeDays)
		if start.Before(floor) {
			return Window{}, appErrors.Clone(appErrors.ErrRangeTooOld,
				fmt.Sprintf("Start date cannot be more than 3 months ago. Earliest allowed date: %s", floor.Format(DateLayout)))
		}
	}
	if end.After(today) {
		return Window{}, appErrors.Clone(appErrors.ErrFutureDateNotAllowed,
			fmt.Sprintf("End date cannot be in the future. Latest allowed date: %s", today.Format(DateLayout)))
	}
	if start.After(*end) {
		return Window{}, appErrors.Clone(appErrors.ErrInvertedRange, "Start date cannot be after end date.")
	}

	days := daysBetween(*start, *end)
	if policy.MaxSpanDays > 0 && days > policy.MaxSpanDays {
		return Window{}, appErrors.Clone(appErrors.ErrRangeTooWide,
			fmt.Sprintf("Date range cannot exceed 1 year (%d days). Current range: %d days. Please reduce the date range.", policy.MaxSpanDays, days))
	}

	return Window{Start: *start, End: *end, DurationDays: days}, nil
}

func parseDate(raw *string, field string, loc *time.Location) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, *raw, loc)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidDateFormat, fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD format.", field))
	}
	return &t, nil
}

// daysBetween counts calendar days, ignoring DST shifts.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
