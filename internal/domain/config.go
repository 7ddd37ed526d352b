package domain

import "time"

// Location is a named parking area with a fixed daily capacity.
type Location struct {
	Name     string
	Capacity int
}

// RestrictedGroup is a subset of users limited to a subset of locations.
type RestrictedGroup struct {
	Members          []string
	AllowedLocations []string
}

// Executive describes the user holding the standing reservation.
type Executive struct {
	Name         string
	HomeLocation string
	// PrebookUntil is the last date for which the standing reservation
	// is auto-created.
	PrebookUntil time.Time
}

// StaticConfig is the fixed allocation configuration loaded at startup:
// the user allowlist, the locations with their capacities, the
// restricted group and the executive. It is injected into the allocator
// and the reservation manager so tests can substitute fixtures.
type StaticConfig struct {
	Users           []string
	Locations       []Location
	RestrictedGroup RestrictedGroup
	Executive       Executive
}

// IsKnownUser reports whether name is on the allowlist.
func (c *StaticConfig) IsKnownUser(name string) bool {
	for _, u := range c.Users {
		if u == name {
			return true
		}
	}
	return false
}

// LocationCapacity returns the capacity for the named location.
func (c *StaticConfig) LocationCapacity(name string) (int, bool) {
	for _, l := range c.Locations {
		if l.Name == name {
			return l.Capacity, true
		}
	}
	return 0, false
}

// IsRestricted reports whether the user belongs to the restricted group.
func (c *StaticConfig) IsRestricted(user string) bool {
	for _, m := range c.RestrictedGroup.Members {
		if m == user {
			return true
		}
	}
	return false
}

// IsAllowedForRestricted reports whether a restricted-group member may
// book the named location.
func (c *StaticConfig) IsAllowedForRestricted(location string) bool {
	for _, l := range c.RestrictedGroup.AllowedLocations {
		if l == location {
			return true
		}
	}
	return false
}

// IsExecutive reports whether the user holds the standing reservation.
func (c *StaticConfig) IsExecutive(user string) bool {
	return user == c.Executive.Name
}
