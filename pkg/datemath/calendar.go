package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Format renders t as YYYY-MM-DD in t's own location.
func Format(t time.Time) string {
	return t.Format(DateFormat)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseUnit maps singular and plural unit names to a Unit.
func ParseUnit(s string) (Unit, bool) {
	switch strings.TrimSuffix(strings.ToLower(s), "s") {
	case "day":
		return UnitDay, true
	case "week":
		return UnitWeek, true
	case "month":
		return UnitMonth, true
	case "year":
		return UnitYear, true
	}
	return "", false
}

// Add moves t by n units. Month and year steps keep the day of month,
// clamped to the last day of the target month (Jan 31 + 1 month = Feb 28/29).
func Add(t time.Time, n int, unit Unit) (time.Time, error) {
	switch unit {
	case UnitDay:
		return t.AddDate(0, 0, n), nil
	case UnitWeek:
		return t.AddDate(0, 0, 7*n), nil
	case UnitMonth:
		return AddMonths(t, n), nil
	case UnitYear:
		return AddMonths(t, 12*n), nil
	}
	return t, fmt.Errorf("unknown time unit: %q", unit)
}

// AddMonths adds n months to t, clamping the day to the target month's length.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SetISOWeekday moves t to the given ISO weekday within t's ISO week.
func SetISOWeekday(t time.Time, isoDay int) time.Time {
	return t.AddDate(0, 0, isoDay-ISOWeekday(t))
}

// NextWeekday returns the next occurrence of isoDay strictly after t's day:
// later in the current ISO week when possible, otherwise in the following week.
func NextWeekday(t time.Time, isoDay int) time.Time {
	if ISOWeekday(t) < isoDay {
		return SetISOWeekday(t, isoDay)
	}
	return SetISOWeekday(t.AddDate(0, 0, 7), isoDay)
}
