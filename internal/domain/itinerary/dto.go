package itinerary

import (
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// Selection is everything captured when a room is picked from the listing.
type Selection struct {
	PropertyID int               `json:"propertyId" validate:"required,gte=1"`
	Room       ibeapi.RoomOffer  `json:"room" validate:"required"`
	ImageURL   string            `json:"imageUrl,omitempty"`
	StartDate  time.Time         `json:"startDate" validate:"required"`
	EndDate    time.Time         `json:"endDate" validate:"required"`
	Counts     guest.Counts      `json:"counts" validate:"required"`
	Rooms      int               `json:"rooms" validate:"required,gte=1"`
	Beds       int               `json:"beds" validate:"gte=0"`
	Promotion  *ibeapi.Promotion `json:"promotion,omitempty"`
}

// TravelerForm is the checkout traveler step. Last name requirement varies
// per property, so it stays optional here and the handler enforces it when
// the config says so.
type TravelerForm struct {
	FirstName     string `json:"firstName" validate:"required,min=2,max=100"`
	LastName      string `json:"lastName" validate:"omitempty,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=7,max=20"`
	Email         string `json:"email" validate:"required,email"`
	HasSubscribed bool   `json:"hasSubscribed"`
}

// BillingForm is the checkout billing step.
type BillingForm struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,min=2,max=100"`
	Address1  string `json:"address1" validate:"required,max=200"`
	Address2  string `json:"address2" validate:"omitempty,max=200"`
	City      string `json:"city" validate:"required,max=100"`
	Zipcode   string `json:"zipcode" validate:"required,zipcode"`
	State     string `json:"state" validate:"required,max=100"`
	Country   string `json:"country" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Email     string `json:"email" validate:"required,email"`
}

// PaymentForm is the checkout payment step. Only the stored copy is masked;
// the full number goes straight to the backend at booking time and is never
// written to the session store.
type PaymentForm struct {
	CardNumber  string `json:"cardNumber" validate:"required,card_number"`
	ExpiryMonth string `json:"expiryMonth" validate:"required,expiry_month"`
	ExpiryYear  string `json:"expiryYear" validate:"required,expiry_year"`
}

// Masked returns a storable copy with all but the last four card digits
// blanked.
func (p PaymentForm) Masked() *PaymentForm {
	masked := p
	if n := len(p.CardNumber); n > 4 {
		masked.CardNumber = "************" + p.CardNumber[n-4:]
	}
	return &masked
}

// BookRequest completes the checkout. The payment form arrives here in full
// even when a masked copy was saved earlier.
type BookRequest struct {
	Payment PaymentForm `json:"payment" validate:"required"`
}
