package rates

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the rate calendar router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/calendar", h.Calendar)
	r.Get("/minimum", h.RangeMinimum)

	return r
}
