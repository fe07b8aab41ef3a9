package nutrition

import "time"

// DayRange is the inclusive [Start, End] window of one calendar day
type DayRange struct {
	Start time.Time
	End   time.Time
}

// DayKey returns the calendar day containing t, evaluated in loc.
// Start is local midnight and End is the last millisecond before the next
// local midnight, so DST days are 23 or 25 hours long. A nil loc means UTC.
func DayKey(t time.Time, loc *time.Location) DayRange {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	next := start.AddDate(0, 0, 1)
	return DayRange{Start: start, End: next.Add(-time.Millisecond)}
}

// Contains reports whether t falls inside the range, bounds included
func (r DayRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// SameDay reports whether a and b share a calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc).Start.Equal(DayKey(b, loc).Start)
}

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp.
// Bare dates are interpreted in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalidDate(s)
	}
	return t, nil
}
