package home

import (
	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	getCalendar "github.com/kokoroskosv-git/Parking-slot-app/internal/usecase/get_calendar"
)

// EntryView is one occupied slot on the rendered calendar.
type EntryView struct {
	ID       int64
	UserName string
	// Prebook marks the executive's standing reservation.
	Prebook bool
}

// LocationView is one location column for a day.
type LocationView struct {
	Name      string
	Capacity  int
	Remaining int
	Entries   []EntryView
}

// DayView is one rendered booking day.
type DayView struct {
	// Date is the form value ("2025-10-15").
	Date string
	// DisplayDate is shown to the user ("15/10/2025").
	DisplayDate string
	Locations   []LocationView
}

// PageData is everything the calendar template needs.
type PageData struct {
	Users     []string
	Locations []string
	Days      []DayView
	Message   string
}

// FromUseCaseResponse μετατρέπει την απόκριση του ημερολογίου σε
// δεδομένα για το template.
func FromUseCaseResponse(resp *getCalendar.Response, cfg *domain.StaticConfig, message string) *PageData {
	data := &PageData{
		Users:     cfg.Users,
		Locations: make([]string, 0, len(cfg.Locations)),
		Days:      make([]DayView, 0, len(resp.Days)),
		Message:   message,
	}
	for _, loc := range cfg.Locations {
		data.Locations = append(data.Locations, loc.Name)
	}

	for _, day := range resp.Days {
		view := DayView{
			Date:        day.Date.Format(domain.DateFormat),
			DisplayDate: day.Date.Format(domain.DisplayDateFormat),
			Locations:   make([]LocationView, 0, len(day.Locations)),
		}
		for _, loc := range day.Locations {
			locView := LocationView{
				Name:      loc.Name,
				Capacity:  loc.Capacity,
				Remaining: loc.Remaining,
				Entries:   make([]EntryView, 0, len(loc.Entries)),
			}
			for _, e := range loc.Entries {
				locView.Entries = append(locView.Entries, EntryView{
					ID:       e.ID,
					UserName: e.UserName,
					Prebook:  e.Type == string(domain.TypePrebook),
				})
			}
			view.Locations = append(view.Locations, locView)
		}
		data.Days = append(data.Days, view)
	}

	return data
}
