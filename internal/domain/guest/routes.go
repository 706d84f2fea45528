package guest

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the guest allocation router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/increase", h.Increase)
	r.Post("/decrease", h.Decrease)
	r.Post("/rooms", h.SetRooms)
	r.Post("/beds", h.SetBeds)

	return r
}
