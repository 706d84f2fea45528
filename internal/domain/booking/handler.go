package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kunalm01/ibe-engine/internal/middleware"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

// Handler handles post-booking HTTP requests. The caller's email comes from
// the identity token, never from the query string, so users only ever see
// their own bookings.
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MyBookings handles GET /bookings
func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmail(r.Context())
	if email == "" {
		response.Unauthorized(w, "Sign in to see your bookings")
		return
	}

	bookings, err := h.service.MyBookings(r.Context(), email)
	if err != nil {
		response.BadGateway(w, "Bookings unavailable")
		return
	}
	response.OK(w, bookings)
}

// Get handles GET /bookings/{bookingID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ibeapi.ErrNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.BadGateway(w, "Booking unavailable")
		return
	}
	response.OK(w, b)
}

// RequestCancellation handles POST /bookings/{bookingID}/send-otp
func (h *Handler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	email := middleware.GetEmail(r.Context())
	if email == "" {
		response.Unauthorized(w, "Sign in to cancel a booking")
		return
	}

	if err := h.service.RequestCancellation(r.Context(), bookingID, email); err != nil {
		response.BadGateway(w, "Could not send the cancellation code")
		return
	}
	response.OK(w, map[string]string{"message": "Cancellation code sent"})
}

// Cancel handles DELETE /bookings/{bookingID}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	otp := r.URL.Query().Get("otp")
	if otp == "" {
		response.BadRequest(w, "Cancellation code is required")
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID, otp); err != nil {
		if errors.Is(err, ibeapi.ErrNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.BadGateway(w, "Cancellation failed")
		return
	}
	response.NoContent(w)
}

func (h *Handler) bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(w, "Invalid booking id")
		return 0, false
	}
	return id, true
}
