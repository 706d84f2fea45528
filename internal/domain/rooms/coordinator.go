package rooms

import (
	"context"
	"sync"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// Searcher is the slice of the backend client the coordinator needs.
type Searcher interface {
	SearchRooms(ctx context.Context, page, pageSize int, req ibeapi.RoomSearchRequest) (*ibeapi.RoomSearchResponse, error)
}

// Status is the request lifecycle state of the room listing.
type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusError     Status = "error"
)

// State is a snapshot of the room listing: the current page of offers plus
// paging bookkeeping. On errors the last successful page is retained so the
// listing never blanks out.
type State struct {
	Status       Status             `json:"status"`
	Rooms        []ibeapi.RoomOffer `json:"rooms"`
	TotalRecords int                `json:"totalRecords"`
	Page         int                `json:"page"`
	PageSize     int                `json:"pageSize"`
	TotalPages   int                `json:"totalPages"`
	Error        string             `json:"error,omitempty"`
}

// Coordinator serializes room searches for one browsing session. Overlapping
// searches are resolved last-request-wins: a response is discarded when a
// newer search has started since its request went out.
type Coordinator struct {
	searcher Searcher
	pageSize int

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewCoordinator creates a coordinator with an empty listing.
func NewCoordinator(searcher Searcher, pageSize int) *Coordinator {
	return &Coordinator{
		searcher: searcher,
		pageSize: pageSize,
		state: State{
			Status:   StatusPending,
			Page:     1,
			PageSize: pageSize,
		},
	}
}

// State returns the current listing snapshot.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Search runs one room search and folds the response into the listing. When
// the result-set size changed under a page deeper than the first, the page
// resets to 1 and that first page is fetched instead, so the user is never
// stranded past the end of a shrunken result set.
func (c *Coordinator) Search(ctx context.Context, page int, req ibeapi.RoomSearchRequest) State {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.seq++
	mine := c.seq
	c.state.Status = StatusPending
	c.state.Error = ""
	prevTotal := c.state.TotalRecords
	pageSize := c.pageSize
	c.mu.Unlock()

	resp, err := c.searcher.SearchRooms(ctx, page, pageSize, req)

	if err == nil && resp.TotalRecords != prevTotal && page > 1 {
		page = 1
		resp, err = c.searcher.SearchRooms(ctx, page, pageSize, req)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if mine != c.seq {
		// A newer search superseded this one.
		return c.snapshotLocked()
	}

	if err != nil {
		c.state.Status = StatusError
		c.state.Error = err.Error()
		return c.snapshotLocked()
	}

	c.state.Status = StatusFulfilled
	c.state.Rooms = resp.ListRooms
	c.state.TotalRecords = resp.TotalRecords
	c.state.Page = page
	c.state.TotalPages = totalPages(resp.TotalRecords, pageSize)
	return c.snapshotLocked()
}

func (c *Coordinator) snapshotLocked() State {
	out := c.state
	out.Rooms = append([]ibeapi.RoomOffer(nil), c.state.Rooms...)
	return out
}

func totalPages(totalRecords, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalRecords + pageSize - 1) / pageSize
}
