package itinerary

import (
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/domain/pricing"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// State is the itinerary lifecycle position. An absent itinerary is the
// empty state; Abandoned is modeled by deletion, not stored.
type State string

const (
	StateSelected   State = "selected"
	StateConfirming State = "confirming"
	StateBooked     State = "booked"
)

// Itinerary is one session's booking in progress. A session holds at most
// one; selecting another room replaces it wholesale. The countdown runs from
// room selection and is cancelled by a successful booking.
type Itinerary struct {
	SessionID  string            `json:"sessionId"`
	State      State             `json:"state"`
	PropertyID int               `json:"propertyId"`
	Room       ibeapi.RoomOffer  `json:"room"`
	ImageURL   string            `json:"imageUrl,omitempty"`
	StartDate  time.Time         `json:"startDate"`
	EndDate    time.Time         `json:"endDate"`
	Counts     guest.Counts      `json:"counts"`
	Rooms      int               `json:"rooms"`
	Beds       int               `json:"beds"`
	Promotion  *ibeapi.Promotion `json:"promotion,omitempty"`

	Traveler *TravelerForm `json:"traveler,omitempty"`
	Billing  *BillingForm  `json:"billing,omitempty"`
	Payment  *PaymentForm  `json:"payment,omitempty"`

	BookingID int64     `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// Nights returns the stay length in nights.
func (i *Itinerary) Nights() int {
	return int(i.EndDate.Sub(i.StartDate).Hours() / 24)
}

// FullPaymentRequired reports whether the attached promotion demands the
// whole total up front.
func (i *Itinerary) FullPaymentRequired() bool {
	return i.Promotion != nil && i.Promotion.PromotionID == pricing.FullPaymentPromotionID
}

// Expired reports whether the checkout window has closed. Booked
// itineraries never expire.
func (i *Itinerary) Expired(now time.Time) bool {
	if i.State == StateBooked || i.ExpiresAt.IsZero() {
		return false
	}
	return now.After(i.ExpiresAt)
}
