package rates

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

// Handler handles rate calendar HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates rates handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Calendar handles GET /rates/calendar
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(r.URL.Query().Get("property"))
	if err != nil || propertyID <= 1 {
		response.BadRequest(w, "Invalid property id")
		return
	}

	rates, err := h.service.Calendar(r.Context(), propertyID)
	if err != nil {
		response.BadGateway(w, "Rate calendar unavailable")
		return
	}
	response.OK(w, rates)
}

// RangeMinimum handles GET /rates/minimum
func (h *Handler) RangeMinimum(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	propertyID, err := strconv.Atoi(q.Get("property"))
	if err != nil || propertyID <= 1 {
		response.BadRequest(w, "Invalid property id")
		return
	}
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

	minimum, ok, err := h.service.RangeMinimum(r.Context(), propertyID, start, end)
	if err != nil {
		response.BadGateway(w, "Rate calendar unavailable")
		return
	}

	type rangeMinimum struct {
		Minimum   float64 `json:"minimum"`
		Available bool    `json:"available"`
	}
	response.OK(w, rangeMinimum{Minimum: minimum, Available: ok})
}
