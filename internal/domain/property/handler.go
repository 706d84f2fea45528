package property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

// Handler handles property config HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates property config handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Tenant handles GET /config
func (h *Handler) Tenant(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Tenant(r.Context())
	if err != nil {
		response.BadGateway(w, "Tenant configuration unavailable")
		return
	}
	response.OK(w, cfg)
}

// Property handles GET /config/property/{propertyID}
func (h *Handler) Property(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "propertyID"))
	if err != nil || propertyID <= 1 {
		response.BadRequest(w, "Invalid property id")
		return
	}

	prop, err := h.service.Property(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, ErrUnknownProperty) {
			response.NotFound(w, "Property not found")
			return
		}
		response.BadGateway(w, "Tenant configuration unavailable")
		return
	}
	response.OK(w, prop)
}
