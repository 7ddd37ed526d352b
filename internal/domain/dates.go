package domain

import "time"

// IsWorkingDay reports whether d falls on Monday through Friday.
func IsWorkingDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// NextWorkingDay returns the first working day strictly after d.
func NextWorkingDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	for !IsWorkingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// StandardBookingDays derives the two bookable calendar days from the
// current date: today (or the next working day when today is not one)
// and the working day after it.
func StandardBookingDays(today time.Time) (time.Time, time.Time) {
	day1 := DateOnly(today)
	if !IsWorkingDay(day1) {
		day1 = NextWorkingDay(day1)
	}
	return day1, NextWorkingDay(day1)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
