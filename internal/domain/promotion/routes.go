package promotion

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the promotion router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/code", h.ValidateCode)

	return r
}
