package promotion

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

// Handler handles promotion HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates promotion handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /promotions
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := time.Parse(dateLayout, q.Get("startDate"))
	if err != nil {
		response.BadRequest(w, "Invalid start date, expected yyyy-mm-dd")
		return
	}
	end, err := time.Parse(dateLayout, q.Get("endDate"))
	if err != nil {
		response.BadRequest(w, "Invalid end date, expected yyyy-mm-dd")
		return
	}
	if !start.Before(end) {
		response.BadRequest(w, "Start date must be before end date")
		return
	}

	promos, err := h.service.Applicable(r.Context(), start, end,
		q.Get("military") == "true", q.Get("senior") == "true")
	if err != nil {
		response.BadGateway(w, "Promotions unavailable")
		return
	}
	response.OK(w, promos)
}

// ValidateCode handles GET /promotions/code
func (h *Handler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	roomTypeID, err := strconv.Atoi(q.Get("roomTypeId"))
	if err != nil || roomTypeID < 1 {
		response.BadRequest(w, "Invalid room type id")
		return
	}
	code := q.Get("code")
	if code == "" {
		response.BadRequest(w, "Promo code is required")
		return
	}

	promo, err := h.service.Validate(r.Context(), roomTypeID, code)
	if err != nil {
		if errors.Is(err, ibeapi.ErrNotFound) {
			response.NotFound(w, "Invalid promo code")
			return
		}
		response.BadGateway(w, "Promo code validation unavailable")
		return
	}
	response.OK(w, promo)
}
