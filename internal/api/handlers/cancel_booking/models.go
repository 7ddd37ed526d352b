package cancel_booking

import (
	"net/http"
	"strconv"
)

// CancelForm is the POST /cancel form payload.
type CancelForm struct {
	BookingID int64
}

// ParseCancelForm reads the booking id from the request form.
func ParseCancelForm(r *http.Request) (*CancelForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(r.PostFormValue("booking_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &CancelForm{BookingID: id}, nil
}
