package rooms

import (
	"testing"
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/domain/search"
)

func testCriteria() search.Criteria {
	return search.Criteria{
		PropertyID: 11,
		StartDate:  time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC),
		Counts:     guest.Counts{guest.TypeAdults: 2, guest.TypeKids: 1},
		Rooms:      1,
		Beds:       2,
	}
}

func TestBuildRequestMapsCriteria(t *testing.T) {
	req := BuildRequest(testCriteria(), Filters{}, "")

	if req.StartDate != "2024-05-20" || req.EndDate != "2024-05-23" {
		t.Errorf("unexpected dates: %s..%s", req.StartDate, req.EndDate)
	}
	if req.PropertyID != 11 {
		t.Errorf("expected property 11, got %d", req.PropertyID)
	}
	if req.TotalCounts != 3 || req.TotalRoomsSelected != 1 || req.TotalBedsSelected != 2 {
		t.Errorf("unexpected totals: %+v", req)
	}
}

func TestBuildRequestRoomTypeOnlyWhenSingle(t *testing.T) {
	req := BuildRequest(testCriteria(), Filters{RoomTypes: []string{"Garden Suite"}}, "")
	if req.RoomTypeName != "GARDEN SUITE" {
		t.Errorf("expected uppercased room type, got %q", req.RoomTypeName)
	}

	req = BuildRequest(testCriteria(), Filters{RoomTypes: []string{"Garden Suite", "Couple Suite"}}, "")
	if req.RoomTypeName != "" {
		t.Errorf("multiple room types should drop the filter, got %q", req.RoomTypeName)
	}
}

func TestBuildRequestBedFlags(t *testing.T) {
	req := BuildRequest(testCriteria(), Filters{BedTypes: []string{"Queen Bed"}}, "")
	if req.SingleBed != 1 || req.DoubleBed != 0 {
		t.Errorf("expected singleBed only, got single=%d double=%d", req.SingleBed, req.DoubleBed)
	}

	req = BuildRequest(testCriteria(), Filters{BedTypes: []string{"Queen Bed", "King Bed"}}, "")
	if req.SingleBed != 1 || req.DoubleBed != 1 {
		t.Errorf("expected both flags, got single=%d double=%d", req.SingleBed, req.DoubleBed)
	}
}

func TestBuildRequestLabelParsing(t *testing.T) {
	f := Filters{
		MinArea:      "300 sq ft and above",
		PriceCeiling: "Less than $150",
		MinCapacity:  "4 guests",
	}
	req := BuildRequest(testCriteria(), f, "")
	if req.Area != 300 {
		t.Errorf("expected area 300, got %d", req.Area)
	}
	if req.MaxPrice != 150 {
		t.Errorf("expected max price 150, got %d", req.MaxPrice)
	}
	if req.MinCapacity != 4 {
		t.Errorf("expected min capacity 4, got %d", req.MinCapacity)
	}
}

func TestBuildRequestMalformedLabelsDegradeToZero(t *testing.T) {
	f := Filters{
		MinArea:      "spacious",
		PriceCeiling: "budget friendly",
		MinCapacity:  "family",
	}
	req := BuildRequest(testCriteria(), f, "")
	if req.Area != 0 || req.MaxPrice != 0 || req.MinCapacity != 0 {
		t.Errorf("malformed labels should map to zero, got %+v", req)
	}
}

func TestBuildRequestSortTranslation(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Name A-Z", "Name Asc"},
		{"Name Z-A", "Name Desc"},
		{"Price Low to High", "Price Low to High"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BuildRequest(testCriteria(), Filters{}, tt.in).Sort; got != tt.want {
			t.Errorf("sort %q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
