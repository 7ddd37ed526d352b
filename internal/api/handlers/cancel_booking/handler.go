package cancel_booking

import (
	"net/http"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers"
)

const (
	msgBookingCancelled = "Η κράτηση ακυρώθηκε"
	msgInvalidRequest   = "Μη έγκυρα στοιχεία ακύρωσης"
	msgInternalError    = "Παρουσιάστηκε σφάλμα, δοκιμάστε ξανά"
)

type Handler struct {
	service CancelBookingService
	logger  Logger
}

func NewHandler(service CancelBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /cancel
//
// Cancellation is idempotent: cancelling an id that no longer exists
// still reports success, matching what the user sees on a stale page.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, err := ParseCancelForm(r)
	if err != nil {
		h.logger.Warn("POST /cancel - Invalid form: %v", err)
		handlers.RedirectWithMessage(w, r, msgInvalidRequest)
		return
	}

	if err := h.service.Cancel(r.Context(), form.BookingID); err != nil {
		h.logger.Error("POST /cancel - Failed to cancel booking: id=%d, error=%v", form.BookingID, err)
		handlers.RedirectWithMessage(w, r, msgInternalError)
		return
	}

	h.logger.Info("POST /cancel - Booking cancelled: id=%d", form.BookingID)
	handlers.RedirectWithMessage(w, r, msgBookingCancelled)
}
