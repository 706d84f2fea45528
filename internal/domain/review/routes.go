package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the review router. Listing is public; submitting runs
// behind auth middleware wired at mount time.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{roomTypeID}", h.List)
	r.With(auth).Post("/{roomTypeID}", h.Submit)

	return r
}
