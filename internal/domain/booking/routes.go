package booking

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the post-booking router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.MyBookings)
	r.Get("/{bookingID}", h.Get)
	r.Post("/{bookingID}/send-otp", h.RequestCancellation)
	r.Delete("/{bookingID}", h.Cancel)

	return r
}
