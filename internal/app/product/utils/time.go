package utils

import "time"

// TimestampLayout is how product timestamps travel between stores and DTOs.
const TimestampLayout = time.RFC3339Nano

// FormatTime renders t in UTC using TimestampLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatTimePtr is FormatTime for optional DTO fields.
func FormatTimePtr(t time.Time) *string {
	s := FormatTime(t)
	return &s
}

// ParseTimePtr parses an RFC3339 string pointer into *time.Time.
// Returns nil if input is nil, empty, or parsing fails.
func ParseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(TimestampLayout, *s)
	if err != nil {
		return nil
	}
	tt := t.UTC()
	return &tt
}

// TimeOrZero returns the dereferenced time or zero time if nil.
func TimeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
