package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay(t *testing.T) {
	assert.True(t, IsWorkingDay(date(2025, time.October, 13)))  // Monday
	assert.True(t, IsWorkingDay(date(2025, time.October, 17)))  // Friday
	assert.False(t, IsWorkingDay(date(2025, time.October, 18))) // Saturday
	assert.False(t, IsWorkingDay(date(2025, time.October, 19))) // Sunday
}

func TestNextWorkingDay(t *testing.T) {
	// Thursday -> Friday
	assert.Equal(t, date(2025, time.October, 17), NextWorkingDay(date(2025, time.October, 16)))
	// Friday skips the weekend
	assert.Equal(t, date(2025, time.October, 20), NextWorkingDay(date(2025, time.October, 17)))
	// Saturday -> Monday
	assert.Equal(t, date(2025, time.October, 20), NextWorkingDay(date(2025, time.October, 18)))
}

func TestStandardBookingDays_Midweek(t *testing.T) {
	day1, day2 := StandardBookingDays(date(2025, time.October, 14)) // Tuesday

	assert.Equal(t, date(2025, time.October, 14), day1)
	assert.Equal(t, date(2025, time.October, 15), day2)
}

func TestStandardBookingDays_Friday(t *testing.T) {
	day1, day2 := StandardBookingDays(date(2025, time.October, 17))

	assert.Equal(t, date(2025, time.October, 17), day1)
	assert.Equal(t, date(2025, time.October, 20), day2) // Monday
}

func TestStandardBookingDays_Weekend(t *testing.T) {
	// Saturday rolls forward to Monday and Tuesday.
	day1, day2 := StandardBookingDays(date(2025, time.October, 18))

	assert.Equal(t, date(2025, time.October, 20), day1)
	assert.Equal(t, date(2025, time.October, 21), day2)
}

func TestStandardBookingDays_DropsTimeOfDay(t *testing.T) {
	day1, _ := StandardBookingDays(time.Date(2025, time.October, 14, 17, 45, 3, 0, time.UTC))

	assert.Equal(t, date(2025, time.October, 14), day1)
}

func TestDateOnly(t *testing.T) {
	got := DateOnly(time.Date(2025, time.October, 14, 23, 59, 59, 1, time.UTC))

	assert.Equal(t, date(2025, time.October, 14), got)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, time.October, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.October, 14, 22, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, morning.AddDate(0, 0, 1)))
}
