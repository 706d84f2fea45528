package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kunalm01/ibe-engine/internal/middleware"
	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

// Handler handles room review HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates review handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /reviews/{roomTypeID}
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := h.roomTypeID(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.List(r.Context(), roomTypeID)
	if err != nil {
		response.BadGateway(w, "Reviews unavailable")
		return
	}
	response.OK(w, reviews)
}

type submitRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Submit handles POST /reviews/{roomTypeID}
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := h.roomTypeID(w, r)
	if !ok {
		return
	}

	username := middleware.GetName(r.Context())
	if username == "" {
		username = middleware.GetEmail(r.Context())
	}
	if username == "" {
		response.Unauthorized(w, "Sign in to leave a review")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if err := h.service.Submit(r.Context(), roomTypeID, username, req.Rating, req.Comment); err != nil {
		if errors.Is(err, ErrInvalidRating) {
			response.UnprocessableEntity(w, "INVALID_RATING", err.Error())
			return
		}
		response.BadGateway(w, "Could not submit the review")
		return
	}
	response.Created(w, map[string]string{"message": "Review submitted"})
}

func (h *Handler) roomTypeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "roomTypeID"))
	if err != nil || id < 1 {
		response.BadRequest(w, "Invalid room type id")
		return 0, false
	}
	return id, true
}
