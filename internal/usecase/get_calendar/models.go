package get_calendar

import "time"

// EntryView is one occupied slot as shown on the calendar.
type EntryView struct {
	ID       int64
	UserName string
	Type     string
}

// LocationView is one location's availability for a single day.
type LocationView struct {
	Name      string
	Capacity  int
	Remaining int
	Entries   []EntryView
}

// DayView is one booking day with every configured location.
type DayView struct {
	Date      time.Time
	Locations []LocationView
}

// Response is the two-day calendar.
type Response struct {
	Days []DayView
}
