package itinerary

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the itinerary router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Select)
	r.Get("/", h.Get)
	r.Delete("/", h.Remove)

	r.Post("/checkout", h.BeginCheckout)
	r.Post("/back", h.BackToRooms)

	r.Put("/traveler", h.SaveTraveler)
	r.Put("/billing", h.SaveBilling)
	r.Put("/payment", h.SavePayment)

	r.Get("/price", h.PriceBreakdown)
	r.Post("/book", h.Book)

	return r
}
