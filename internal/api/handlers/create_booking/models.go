package create_booking

import (
	"net/http"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	createBooking "github.com/kokoroskosv-git/Parking-slot-app/internal/usecase/create_booking"
)

// BookingForm is the POST /book form payload.
type BookingForm struct {
	UserName    string
	Location    string
	BookingDate string // "2025-10-15"
}

// ParseBookingForm reads the booking fields from the request form.
func ParseBookingForm(r *http.Request) (*BookingForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &BookingForm{
		UserName:    r.PostFormValue("user_name"),
		Location:    r.PostFormValue("location"),
		BookingDate: r.PostFormValue("booking_date"),
	}, nil
}

// ToUseCaseRequest μετατρέπει τη φόρμα σε αίτημα του use case.
func (f *BookingForm) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, f.BookingDate)
	if err != nil {
		return nil, err
	}
	return &createBooking.Request{
		UserName: f.UserName,
		Location: f.Location,
		Date:     date,
	}, nil
}
