package rooms

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/search"
	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

// ConfigSource supplies the per-property page size.
type ConfigSource interface {
	PageSize(ctx context.Context, propertyID int) (int, error)
}

// Handler handles room listing HTTP requests. Listings are coordinated per
// browsing session so rapid filter changes resolve last-request-wins.
type Handler struct {
	searcher Searcher
	config   ConfigSource

	mu           sync.Mutex
	coordinators map[string]*Coordinator
}

// NewHandler creates room listing handler
func NewHandler(searcher Searcher, config ConfigSource) *Handler {
	return &Handler{
		searcher:     searcher,
		config:       config,
		coordinators: make(map[string]*Coordinator),
	}
}

// List handles GET /rooms
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := search.Parse(q)
	if err != nil {
		response.UnprocessableEntity(w, "INVALID_SEARCH", err.Error())
		return
	}
	criteria, err := params.Validate(nowUTC())
	if err != nil {
		response.UnprocessableEntity(w, "INVALID_SEARCH", err.Error())
		return
	}

	filters := Filters{
		BedTypes:     q["bedType"],
		RoomTypes:    q["roomType"],
		PriceCeiling: q.Get("price"),
		MinCapacity:  q.Get("capacity"),
		MinArea:      q.Get("area"),
	}
	sort := q.Get("sort")

	page := 1
	if raw := q.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			response.BadRequest(w, "Invalid page number")
			return
		}
	}

	pageSize, err := h.config.PageSize(r.Context(), criteria.PropertyID)
	if err != nil {
		response.BadGateway(w, "Property configuration unavailable")
		return
	}

	coordinator := h.coordinator(sessionKey(r, criteria.PropertyID), pageSize)
	state := coordinator.Search(r.Context(), page, BuildRequest(criteria, filters, sort))

	if state.Status == StatusError && len(state.Rooms) == 0 {
		response.BadGateway(w, "Room search failed")
		return
	}
	response.WithMeta(w, state, response.Meta{
		Total:      state.TotalRecords,
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: state.TotalPages,
	})
}

func (h *Handler) coordinator(key string, pageSize int) *Coordinator {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.coordinators[key]; ok && c.pageSize == pageSize {
		return c
	}
	c := NewCoordinator(h.searcher, pageSize)
	h.coordinators[key] = c
	return c
}

func sessionKey(r *http.Request, propertyID int) string {
	session := r.Header.Get("X-Session-ID")
	if session == "" {
		session = r.RemoteAddr
	}
	return fmt.Sprintf("%s/%d", session, propertyID)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
