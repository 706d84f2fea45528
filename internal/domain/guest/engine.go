package guest

// Code is a machine-readable outcome reason. The UI maps codes to localized
// messages; Message is the English default.
type Code string

const (
	CodeOK                    Code = "OK"
	CodeMaxGuestsReached      Code = "MAX_GUESTS_REACHED"
	CodeIncreaseAdultsFirst   Code = "INCREASE_ADULTS_FIRST"
	CodeNegativeCount         Code = "NEGATIVE_COUNT"
	CodeAdultsBelowRooms      Code = "ADULTS_BELOW_ROOMS"
	CodeIncreaseAdultsForBeds Code = "INCREASE_ADULTS_FOR_BEDS"
	CodeCountsReset           Code = "COUNTS_RESET"
	CodeInvalidCount          Code = "INVALID_COUNT"
)

var messages = map[Code]string{
	CodeOK:                    "",
	CodeMaxGuestsReached:      "Maximum guests per booking threshold reached!",
	CodeIncreaseAdultsFirst:   "Increase adults count to add more guests!",
	CodeNegativeCount:         "Guests count cannot be negative!",
	CodeAdultsBelowRooms:      "Adults count cannot be less than room count!",
	CodeIncreaseAdultsForBeds: "Increase adults count to select this option!",
	CodeCountsReset:           "Maximum allowed guests in selected room count threshold reached! Resetting values...",
	CodeInvalidCount:          "Room and bed counts must be at least 1!",
}

// Outcome reports how a mutation went. Rejections leave state untouched;
// CodeCountsReset is a warning on an applied (destructive) mutation.
type Outcome struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
}

func outcome(code Code) Outcome {
	return Outcome{Code: code, Message: messages[code]}
}

// OK reports whether the mutation was applied (warnings included).
func (o Outcome) OK() bool {
	return o.Code == CodeOK || o.Code == CodeCountsReset
}

// IncreaseGuest adds one guest of the given type. When the current rooms are
// full it tries to open another room, which needs spare adult capacity
// unless the new guest is an adult.
func IncreaseGuest(t Type, counts Counts, alloc Allocation, policy CapacityPolicy) (Counts, Allocation, Outcome) {
	total := counts.Total()

	if total < alloc.SelectedRooms*policy.MaxGuestsPerRoom {
		next := counts.Clone()
		next[t]++
		return next, alloc, outcome(CodeOK)
	}

	if alloc.SelectedRooms >= policy.MaxRoomsAllowed {
		return counts, alloc, outcome(CodeMaxGuestsReached)
	}

	if t != TypeAdults && counts[TypeAdults] <= alloc.SelectedRooms {
		return counts, alloc, outcome(CodeIncreaseAdultsFirst)
	}

	next := counts.Clone()
	next[t]++
	alloc.SelectedRooms++
	return next, alloc, outcome(CodeOK)
}

// DecreaseGuest removes one guest of the given type. Adults can never drop
// below the selected room count; removing other guests releases rooms that
// are no longer needed.
func DecreaseGuest(t Type, counts Counts, alloc Allocation, policy CapacityPolicy) (Counts, Allocation, Outcome) {
	if counts[t] == 0 {
		return counts, alloc, outcome(CodeNegativeCount)
	}

	if t == TypeAdults {
		if counts[TypeAdults] <= alloc.SelectedRooms {
			return counts, alloc, outcome(CodeAdultsBelowRooms)
		}
		next := counts.Clone()
		next[TypeAdults]--
		return next, alloc, outcome(CodeOK)
	}

	total := counts.Total()
	if needed := ceilDiv(total-1, policy.MaxGuestsPerRoom); needed < alloc.SelectedRooms {
		alloc.SelectedRooms = needed
	}
	next := counts.Clone()
	next[t]--
	return next, alloc, outcome(CodeOK)
}

// SetRoomCount selects a room count directly. Adults are raised to cover
// every room; if the selection can no longer hold everyone, all non-adult
// counts are reset to zero and the caller gets a warning outcome.
func SetRoomCount(rooms int, counts Counts, alloc Allocation, policy CapacityPolicy) (Counts, Allocation, Outcome) {
	if rooms < 1 {
		return counts, alloc, outcome(CodeInvalidCount)
	}

	total := counts.Total()
	next := counts.Clone()
	result := outcome(CodeOK)

	alloc.SelectedRooms = rooms
	if next[TypeAdults] < rooms {
		next[TypeAdults] = rooms
	}
	if total > rooms*policy.MaxGuestsPerRoom {
		next = Counts{TypeAdults: rooms, TypeTeens: 0, TypeKids: 0, TypeSeniors: 0}
		result = outcome(CodeCountsReset)
	}
	alloc.SelectedBeds = ceilDiv(total, rooms)

	return next, alloc, result
}

// SetBedCount selects a bed count directly. The implied room count
// ceil(total/beds) must stay coverable by the adults present.
func SetBedCount(beds int, counts Counts, alloc Allocation) (Allocation, Outcome) {
	if beds < 1 {
		return alloc, outcome(CodeInvalidCount)
	}

	impliedRooms := ceilDiv(counts.Total(), beds)
	if impliedRooms > counts[TypeAdults] {
		return alloc, outcome(CodeIncreaseAdultsForBeds)
	}
	alloc.SelectedRooms = impliedRooms
	alloc.SelectedBeds = beds
	return alloc, outcome(CodeOK)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
