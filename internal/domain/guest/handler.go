package guest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kunalm01/ibe-engine/internal/pkg/response"
	"github.com/kunalm01/ibe-engine/internal/pkg/validator"
)

// PolicyProvider supplies the per-property capacity policy.
type PolicyProvider interface {
	CapacityPolicy(ctx context.Context, propertyID int) (CapacityPolicy, error)
}

// Handler handles guest allocation HTTP requests
type Handler struct {
	policies  PolicyProvider
	validator *validator.Validator
}

// NewHandler creates guest allocation handler
func NewHandler(policies PolicyProvider, v *validator.Validator) *Handler {
	return &Handler{policies: policies, validator: v}
}

// Increase handles POST /guests/increase
func (h *Handler) Increase(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req *MutateRequest, policy CapacityPolicy) (Counts, Allocation, Outcome) {
		return IncreaseGuest(req.GuestType, req.Counts, req.Allocation, policy)
	})
}

// Decrease handles POST /guests/decrease
func (h *Handler) Decrease(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req *MutateRequest, policy CapacityPolicy) (Counts, Allocation, Outcome) {
		return DecreaseGuest(req.GuestType, req.Counts, req.Allocation, policy)
	})
}

// SetRooms handles POST /guests/rooms
func (h *Handler) SetRooms(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req *MutateRequest, policy CapacityPolicy) (Counts, Allocation, Outcome) {
		return SetRoomCount(req.Value, req.Counts, req.Allocation, policy)
	})
}

// SetBeds handles POST /guests/beds
func (h *Handler) SetBeds(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req *MutateRequest, _ CapacityPolicy) (Counts, Allocation, Outcome) {
		alloc, out := SetBedCount(req.Value, req.Counts, req.Allocation)
		return req.Counts, alloc, out
	})
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(*MutateRequest, CapacityPolicy) (Counts, Allocation, Outcome)) {
	var req MutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := h.validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	policy, err := h.policies.CapacityPolicy(r.Context(), req.PropertyID)
	if err != nil {
		response.BadGateway(w, "Property configuration unavailable")
		return
	}

	counts, alloc, out := op(&req, policy)
	response.OK(w, MutateResponse{
		Counts:     counts,
		Allocation: alloc,
		Outcome:    out,
		Summary:    Summary(counts, nil),
	})
}
