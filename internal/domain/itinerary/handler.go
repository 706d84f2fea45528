package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kunalm01/ibe-engine/internal/pkg/response"
	"github.com/kunalm01/ibe-engine/internal/pkg/validator"
)

// Handler handles itinerary HTTP requests. The session identity comes from
// the X-Session-ID header the UI generates per browser tab.
type Handler struct {
	service   *Service
	validator *validator.Validator
}

// NewHandler creates itinerary handler
func NewHandler(service *Service, v *validator.Validator) *Handler {
	return &Handler{service: service, validator: v}
}

// Select handles POST /itinerary
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var sel Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := h.validator.Validate(&sel); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	it, err := h.service.Select(r.Context(), session, sel)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.Created(w, it)
}

// Get handles GET /itinerary
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	it, err := h.service.Get(r.Context(), session)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, it)
}

// Remove handles DELETE /itinerary
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), session); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// BeginCheckout handles POST /itinerary/checkout
func (h *Handler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.BeginCheckout)
}

// BackToRooms handles POST /itinerary/back
func (h *Handler) BackToRooms(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.BackToRooms)
}

// SaveTraveler handles PUT /itinerary/traveler
func (h *Handler) SaveTraveler(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var form TravelerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := h.validator.Validate(&form); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	it, err := h.service.SaveTraveler(r.Context(), session, form)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, it)
}

// SaveBilling handles PUT /itinerary/billing
func (h *Handler) SaveBilling(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var form BillingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := h.validator.Validate(&form); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	it, err := h.service.SaveBilling(r.Context(), session, form)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, it)
}

// SavePayment handles PUT /itinerary/payment
func (h *Handler) SavePayment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var form PaymentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := h.validator.Validate(&form); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	it, err := h.service.SavePayment(r.Context(), session, form)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, it)
}

// PriceBreakdown handles GET /itinerary/price
func (h *Handler) PriceBreakdown(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	breakdown, err := h.service.PriceBreakdown(r.Context(), session)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, breakdown)
}

// Book handles POST /itinerary/book
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := h.validator.Validate(&req.Payment); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	it, err := h.service.Book(r.Context(), session, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.Created(w, it)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, sessionID string) (*Itinerary, error)) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	it, err := op(r.Context(), session)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, it)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	session := r.Header.Get("X-Session-ID")
	if session == "" {
		response.BadRequest(w, "X-Session-ID header is required")
		return "", false
	}
	return session, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "No itinerary for this session")
	case errors.Is(err, ErrExpired):
		response.Error(w, http.StatusGone, "ITINERARY_EXPIRED", "The room hold has expired, please search again")
	case errors.Is(err, ErrInvalidTransition):
		response.UnprocessableEntity(w, "INVALID_STATE", err.Error())
	case errors.Is(err, ErrAlreadyBooked):
		response.UnprocessableEntity(w, "ALREADY_BOOKED", err.Error())
	case errors.Is(err, ErrFormsIncomplete):
		response.UnprocessableEntity(w, "FORMS_INCOMPLETE", err.Error())
	default:
		response.BadGateway(w, "Booking backend unavailable")
	}
}
