package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	createBooking "github.com/kokoroskosv-git/Parking-slot-app/internal/usecase/create_booking"
)

const (
	msgBookingCreated     = "Η κράτηση καταχωρήθηκε"
	msgInvalidRequest     = "Μη έγκυρα στοιχεία κράτησης"
	msgOutsideWindow      = "Κράτηση επιτρέπεται μόνο για σήμερα ή επόμενη εργάσιμη"
	msgLocationNotAllowed = "Δεν έχετε δικαίωμα κράτησης σε αυτό το location"
	msgAlreadyBookedFmt   = "Έχετε ήδη κράτηση για %s"
	msgNoAvailabilityFmt  = "Δεν υπάρχει διαθεσιμότητα για %s"
	msgInternalError      = "Παρουσιάστηκε σφάλμα, δοκιμάστε ξανά"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, err := ParseBookingForm(r)
	if err != nil {
		h.logger.Warn("POST /book - Invalid form: %v", err)
		handlers.RedirectWithMessage(w, r, msgInvalidRequest)
		return
	}

	useCaseReq, err := form.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book - Failed to parse booking date %q: %v", form.BookingDate, err)
		handlers.RedirectWithMessage(w, r, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrOutsideBookingWindow):
			h.logger.Warn("POST /book - Date outside window: user=%s, date=%s", form.UserName, form.BookingDate)
			handlers.RedirectWithMessage(w, r, msgOutsideWindow)

		case errors.Is(err, createBooking.ErrLocationNotAllowed):
			h.logger.Warn("POST /book - Location not allowed: user=%s, location=%s", form.UserName, form.Location)
			handlers.RedirectWithMessage(w, r, msgLocationNotAllowed)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /book - Already booked: user=%s, date=%s", form.UserName, form.BookingDate)
			handlers.RedirectWithMessage(w, r,
				fmt.Sprintf(msgAlreadyBookedFmt, useCaseReq.Date.Format(domain.DisplayDateFormat)))

		case errors.Is(err, createBooking.ErrNoAvailability):
			h.logger.Warn("POST /book - No availability: location=%s, date=%s", form.Location, form.BookingDate)
			handlers.RedirectWithMessage(w, r, fmt.Sprintf(msgNoAvailabilityFmt, form.Location))

		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrUnknownUser),
			errors.Is(err, createBooking.ErrUnknownLocation):
			h.logger.Warn("POST /book - Rejected request: user=%s, location=%s, error=%v",
				form.UserName, form.Location, err)
			handlers.RedirectWithMessage(w, r, msgInvalidRequest)

		default:
			h.logger.Error("POST /book - Failed to create booking: user=%s, location=%s, error=%v",
				form.UserName, form.Location, err)
			handlers.RedirectWithMessage(w, r, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /book - Booking created: id=%d, user=%s, location=%s, date=%s, converted=%t",
		result.ID, result.UserName, result.Location, result.Date.Format(domain.DateFormat), result.Converted)
	handlers.RedirectWithMessage(w, r, msgBookingCreated)
}
