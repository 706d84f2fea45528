package guest

// MutateRequest is the body of every allocation mutation endpoint. The
// gateway holds no allocation state; the UI sends its current selection and
// receives the next one.
type MutateRequest struct {
	PropertyID int        `json:"propertyId" validate:"required,gte=1"`
	GuestType  Type       `json:"guestType,omitempty"`
	Counts     Counts     `json:"counts" validate:"required"`
	Allocation Allocation `json:"allocation"`
	Value      int        `json:"value,omitempty"`
}

// MutateResponse returns the next selection plus the outcome reason.
type MutateResponse struct {
	Counts     Counts     `json:"counts"`
	Allocation Allocation `json:"allocation"`
	Outcome    Outcome    `json:"outcome"`
	Summary    string     `json:"summary"`
}
