package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLocationAvailability(t *testing.T) {
	day := time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)
	entries := []*ParkingEntry{
		{ID: 1, UserName: "Petris", Date: day, Type: TypeBooking, Location: "Office"},
	}

	avail := NewLocationAvailability("Office", day, 2, entries)

	assert.Equal(t, 1, avail.Remaining)
	assert.False(t, avail.IsFull())
	assert.InDelta(t, 50.0, avail.OccupancyRate(), 0.001)
}

func TestNewLocationAvailability_Full(t *testing.T) {
	day := time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)
	entries := []*ParkingEntry{
		{ID: 1, UserName: "Petris", Type: TypeBooking},
		{ID: 2, UserName: "Lampos", Type: TypeBooking},
	}

	avail := NewLocationAvailability("Office", day, 2, entries)

	assert.Zero(t, avail.Remaining)
	assert.True(t, avail.IsFull())
	assert.InDelta(t, 100.0, avail.OccupancyRate(), 0.001)
}

func TestNewLocationAvailability_OverCapacityClampsToZero(t *testing.T) {
	day := time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)
	entries := []*ParkingEntry{
		{ID: 1, Type: TypeBooking},
		{ID: 2, Type: TypeBooking},
		{ID: 3, Type: TypeBooking},
	}

	avail := NewLocationAvailability("Office", day, 2, entries)

	assert.Zero(t, avail.Remaining)
	assert.InDelta(t, 100.0, avail.OccupancyRate(), 0.001)
}

func TestOccupancyRate_ZeroCapacity(t *testing.T) {
	avail := LocationAvailability{Capacity: 0}

	assert.Zero(t, avail.OccupancyRate())
}
