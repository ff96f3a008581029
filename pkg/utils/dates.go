package utils

import "time"

// DateOnly strips the time-of-day portion, keeping the local calendar date.
// All streak and challenge comparisons operate on these canonical dates so
// that a single orchestration call never sees two different "todays".
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the canonical local calendar date for right now.
func Today() time.Time {
	return DateOnly(time.Now())
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// DaysBetween returns the whole calendar days from a to b (positive when b is later).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// WeekStart returns the Monday of the ISO week containing t, as a date.
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return d.AddDate(0, 0, -(weekday - 1))
}
