package domain

import "time"

// EntryType discriminates the three kinds of parking entries.
type EntryType string

const (
	// TypeBooking is an ordinary reservation made by a user.
	TypeBooking EntryType = "booking"
	// TypePrebook is the executive's automatically created standing
	// reservation.
	TypePrebook EntryType = "prebook"
	// TypeCeoCancelled marks that the executive's standing reservation
	// for a date was explicitly cancelled. The row is kept as a
	// tombstone so the reservation is not regenerated; it occupies no
	// capacity.
	TypeCeoCancelled EntryType = "ceo_cancelled"
)

// ParseEntryType converts a stored string into an EntryType.
func ParseEntryType(s string) (EntryType, bool) {
	switch t := EntryType(s); t {
	case TypeBooking, TypePrebook, TypeCeoCancelled:
		return t, true
	default:
		return "", false
	}
}

// ParkingEntry is the sole persisted entity: one parking spot held by
// one user at one location on one date.
type ParkingEntry struct {
	ID       int64
	UserName string
	Date     time.Time
	Type     EntryType
	Location string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the entry occupies capacity. Tombstones do not.
func (e *ParkingEntry) IsActive() bool {
	switch e.Type {
	case TypeBooking, TypePrebook:
		return true
	case TypeCeoCancelled:
		return false
	default:
		return false
	}
}

// IsTombstone reports whether the entry is a cancelled executive slot.
func (e *ParkingEntry) IsTombstone() bool {
	return e.Type == TypeCeoCancelled
}
