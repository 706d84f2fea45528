package property

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the property config router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Tenant)
	r.Get("/property/{propertyID}", h.Property)

	return r
}
