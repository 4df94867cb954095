package dto

import "time"

// Output layouts for record fields.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// FormatDate renders t as a calendar date, passing nil through.
func FormatDate(t *time.Time) *string {
	return format(t, DateLayout)
}

// FormatTimestamp renders t with second precision, passing nil through.
func FormatTimestamp(t *time.Time) *string {
	return format(t, TimestampLayout)
}

// Optional returns nil for an empty filter value so it echoes as null.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func format(t *time.Time, layout string) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(layout)
	return &s
}
