package rooms

import (
	"strings"

	"github.com/kunalm01/ibe-engine/internal/domain/search"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// Filters is the current filter selection, expressed as the display labels
// served by the property config. Labels are parsed into backend fields at
// request-build time so the config stays free-form.
type Filters struct {
	BedTypes     []string `json:"bedTypes"`
	RoomTypes    []string `json:"roomTypes"`
	PriceCeiling string   `json:"priceCeiling"`
	MinCapacity  string   `json:"minCapacity"`
	MinArea      string   `json:"minArea"`
}

// sortAliases maps UI sort labels to the backend's sort keys. Unknown labels
// pass through unchanged.
var sortAliases = map[string]string{
	"Name A-Z": "Name Asc",
	"Name Z-A": "Name Desc",
}

func translateSort(label string) string {
	if alias, ok := sortAliases[label]; ok {
		return alias
	}
	return label
}

// BuildRequest maps a validated search plus the filter selection onto the
// backend's room-search body. Malformed filter labels degrade to the zero
// value, never to an error.
func BuildRequest(c search.Criteria, f Filters, sort string) ibeapi.RoomSearchRequest {
	req := ibeapi.RoomSearchRequest{
		StartDate:          c.StartDate.Format("2006-01-02"),
		EndDate:            c.EndDate.Format("2006-01-02"),
		PropertyID:         c.PropertyID,
		Sort:               translateSort(sort),
		TotalCounts:        c.Counts.Total(),
		TotalRoomsSelected: c.Rooms,
		TotalBedsSelected:  c.Beds,
	}

	// The backend filters on a single room type; with several selected the
	// filter is dropped rather than narrowed to an arbitrary one.
	if len(f.RoomTypes) == 1 {
		req.RoomTypeName = strings.ToUpper(f.RoomTypes[0])
	}

	for _, bed := range f.BedTypes {
		if strings.Contains(bed, "Queen") {
			req.SingleBed = 1
		}
		if strings.Contains(bed, "King") {
			req.DoubleBed = 1
		}
	}

	req.Area = leadingInt(first3(f.MinArea))
	req.MaxPrice = trailingInt(f.PriceCeiling)
	req.MinCapacity = leadingInt(f.MinCapacity)

	return req
}

func first3(s string) string {
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

// leadingInt parses the digit run at the start of s, 0 when there is none.
func leadingInt(s string) int {
	n, seen := 0, false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}

// trailingInt parses the digit run at the end of s, 0 when there is none.
func trailingInt(s string) int {
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0
	}
	return leadingInt(s[start:end])
}
