package rooms

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the room listing router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}
