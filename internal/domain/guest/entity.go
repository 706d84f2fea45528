package guest

import (
	"fmt"
	"strings"
)

// Type identifies a guest category. The labels match what the property
// config serves, so they double as wire values.
type Type string

const (
	TypeAdults  Type = "Adults"
	TypeTeens   Type = "Teens"
	TypeKids    Type = "Kids"
	TypeSeniors Type = "Senior Citizens"
)

// canonicalOrder fixes the display and serialization order of guest types.
var canonicalOrder = []Type{TypeAdults, TypeTeens, TypeKids, TypeSeniors}

// Counts maps guest type to a non-negative count.
type Counts map[Type]int

// NewCounts returns the default single-adult selection.
func NewCounts() Counts {
	return Counts{TypeAdults: 1, TypeTeens: 0, TypeKids: 0, TypeSeniors: 0}
}

// Total returns the sum of all guest counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Clone returns an independent copy; engine operations never mutate their
// input.
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for t, n := range c {
		out[t] = n
	}
	return out
}

// Allocation is the selected room and bed count pair.
type Allocation struct {
	SelectedRooms int `json:"selectedRooms"`
	SelectedBeds  int `json:"selectedBeds"`
}

// CapacityPolicy is the per-property limit set, supplied by the external
// config and read-only here.
type CapacityPolicy struct {
	MaxRoomsAllowed     int
	MaxGuestsPerRoom    int
	MaxBedsPerRoom      int
	MaxLengthOfStayDays int
}

// LabelResolver renders the label of a guest type for a given count,
// keeping the engine locale-agnostic.
type LabelResolver func(t Type, count int) string

// EnglishLabels is the default resolver: "Adults" for many, "Adult" for one.
func EnglishLabels(t Type, count int) string {
	label := string(t)
	if count == 1 {
		label = strings.TrimSuffix(label, "s")
	}
	return label
}

// Summary derives the guest summary string ("2 Adults 1 Kid") on demand
// from canonical counts. Zero-count types are skipped.
func Summary(counts Counts, resolve LabelResolver) string {
	if resolve == nil {
		resolve = EnglishLabels
	}
	var parts []string
	for _, t := range canonicalOrder {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, resolve(t, n)))
		}
	}
	return strings.Join(parts, " ")
}
