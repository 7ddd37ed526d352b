package domain

import "time"

// LocationAvailability is the per-location state of one bookable day:
// the active entries occupying spots and how many spots remain.
type LocationAvailability struct {
	Location  string
	Date      time.Time
	Capacity  int
	Remaining int
	Entries   []*ParkingEntry
}

// NewLocationAvailability derives the remaining spots from the active
// entries. Remaining never goes negative: an executive conversion at a
// full location can briefly put occupancy above capacity.
func NewLocationAvailability(location string, date time.Time, capacity int, entries []*ParkingEntry) LocationAvailability {
	remaining := capacity - len(entries)
	if remaining < 0 {
		remaining = 0
	}
	return LocationAvailability{
		Location:  location,
		Date:      date,
		Capacity:  capacity,
		Remaining: remaining,
		Entries:   entries,
	}
}

// IsFull reports whether the location has no remaining spots.
func (a *LocationAvailability) IsFull() bool {
	return a.Remaining <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100).
func (a *LocationAvailability) OccupancyRate() float64 {
	if a.Capacity == 0 {
		return 0
	}
	occupied := len(a.Entries)
	if occupied > a.Capacity {
		occupied = a.Capacity
	}
	return float64(occupied) / float64(a.Capacity) * 100
}
