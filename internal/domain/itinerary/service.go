package itinerary

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/domain/pricing"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

const dateLayout = "2006-01-02"

// BookingClient is the slice of the backend client the itinerary service
// needs.
type BookingClient interface {
	RateBreakdown(ctx context.Context, req ibeapi.RateBreakdownRequest) ([]ibeapi.DateRate, error)
	CreateBooking(ctx context.Context, req ibeapi.BookingRequest) (int64, error)
}

// TaxConfig is the property's pricing fractions.
type TaxConfig struct {
	TaxRate        float64
	VATRate        float64
	DueNowFraction float64
}

// ConfigSource supplies per-property pricing fractions.
type ConfigSource interface {
	TaxConfig(ctx context.Context, propertyID int) (TaxConfig, error)
}

// Service owns the itinerary lifecycle: room selection, the checkout
// countdown, form capture and the final booking submission.
type Service struct {
	repo     Repository
	backend  BookingClient
	config   ConfigSource
	tenantID int
	window   time.Duration
	now      func() time.Time
}

// NewService creates itinerary service. window is how long a selected room
// is held before the itinerary lapses.
func NewService(repo Repository, backend BookingClient, config ConfigSource, tenantID int, window time.Duration) *Service {
	return &Service{
		repo:     repo,
		backend:  backend,
		config:   config,
		tenantID: tenantID,
		window:   window,
		now:      time.Now,
	}
}

// Select starts a new itinerary from a room pick. Any itinerary the session
// already holds is replaced, booked or not.
func (s *Service) Select(ctx context.Context, sessionID string, sel Selection) (*Itinerary, error) {
	now := s.now()
	it := &Itinerary{
		SessionID:  sessionID,
		State:      StateSelected,
		PropertyID: sel.PropertyID,
		Room:       sel.Room,
		ImageURL:   sel.ImageURL,
		StartDate:  sel.StartDate,
		EndDate:    sel.EndDate,
		Counts:     sel.Counts,
		Rooms:      sel.Rooms,
		Beds:       sel.Beds,
		Promotion:  sel.Promotion,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.window),
	}
	if err := s.repo.Save(ctx, it, s.window); err != nil {
		return nil, err
	}
	return it, nil
}

// Get returns the session's itinerary, or ErrNotFound when there is none or
// the hold has lapsed.
func (s *Service) Get(ctx context.Context, sessionID string) (*Itinerary, error) {
	return s.load(ctx, sessionID)
}

// BeginCheckout moves a selected itinerary into the checkout flow. The
// countdown keeps running; checkout does not buy extra time.
func (s *Service) BeginCheckout(ctx context.Context, sessionID string) (*Itinerary, error) {
	return s.transition(ctx, sessionID, StateSelected, StateConfirming)
}

// BackToRooms returns a checkout in progress to the listing. Captured forms
// stay on the itinerary so a returning user does not retype them.
func (s *Service) BackToRooms(ctx context.Context, sessionID string) (*Itinerary, error) {
	return s.transition(ctx, sessionID, StateConfirming, StateSelected)
}

// SaveTraveler stores the traveler step of the checkout.
func (s *Service) SaveTraveler(ctx context.Context, sessionID string, form TravelerForm) (*Itinerary, error) {
	return s.saveForm(ctx, sessionID, func(it *Itinerary) {
		it.Traveler = &form
	})
}

// SaveBilling stores the billing step of the checkout.
func (s *Service) SaveBilling(ctx context.Context, sessionID string, form BillingForm) (*Itinerary, error) {
	return s.saveForm(ctx, sessionID, func(it *Itinerary) {
		it.Billing = &form
	})
}

// SavePayment stores a masked copy of the payment step. The full card
// number is only ever forwarded at booking time.
func (s *Service) SavePayment(ctx context.Context, sessionID string, form PaymentForm) (*Itinerary, error) {
	return s.saveForm(ctx, sessionID, func(it *Itinerary) {
		it.Payment = form.Masked()
	})
}

// Remove abandons the itinerary, leaving the session empty.
func (s *Service) Remove(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// PriceBreakdown prices the itinerary from the live nightly rate schedule.
func (s *Service) PriceBreakdown(ctx context.Context, sessionID string) (pricing.Breakdown, error) {
	var b pricing.Breakdown

	it, err := s.load(ctx, sessionID)
	if err != nil {
		return b, err
	}
	return s.price(ctx, it)
}

// Book submits the itinerary to the backend and pins the result. A
// successful booking cancels the countdown; the itinerary stays readable
// for the confirmation page.
func (s *Service) Book(ctx context.Context, sessionID string, req BookRequest) (*Itinerary, error) {
	it, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if it.State == StateBooked {
		return nil, ErrAlreadyBooked
	}
	if it.State != StateConfirming {
		return nil, ErrInvalidTransition
	}
	if it.Traveler == nil || it.Billing == nil {
		return nil, ErrFormsIncomplete
	}

	breakdown, err := s.price(ctx, it)
	if err != nil {
		return nil, err
	}

	bookingID, err := s.backend.CreateBooking(ctx, s.buildBookingRequest(it, req.Payment, breakdown))
	if err != nil {
		return nil, err
	}

	it.State = StateBooked
	it.BookingID = bookingID
	it.ExpiresAt = time.Time{}
	it.Payment = req.Payment.Masked()
	if err := s.repo.Save(ctx, it, 0); err != nil {
		// The booking exists upstream; surface it even if pinning failed.
		log.Error().Err(err).Int64("booking_id", bookingID).Msg("failed to pin booked itinerary")
	}
	return it, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*Itinerary, error) {
	it, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if it.Expired(s.now()) {
		_ = s.repo.Delete(ctx, sessionID)
		return nil, ErrExpired
	}
	return it, nil
}

func (s *Service) transition(ctx context.Context, sessionID string, from, to State) (*Itinerary, error) {
	it, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if it.State != from {
		return nil, ErrInvalidTransition
	}
	it.State = to
	if err := s.save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) saveForm(ctx context.Context, sessionID string, apply func(*Itinerary)) (*Itinerary, error) {
	it, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if it.State != StateConfirming {
		return nil, ErrInvalidTransition
	}
	apply(it)
	if err := s.save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// save persists with whatever is left of the checkout window.
func (s *Service) save(ctx context.Context, it *Itinerary) error {
	if it.ExpiresAt.IsZero() {
		return s.repo.Save(ctx, it, 0)
	}
	remaining := it.ExpiresAt.Sub(s.now())
	if remaining <= 0 {
		_ = s.repo.Delete(ctx, it.SessionID)
		return ErrExpired
	}
	return s.repo.Save(ctx, it, remaining)
}

func (s *Service) price(ctx context.Context, it *Itinerary) (pricing.Breakdown, error) {
	var b pricing.Breakdown

	rates, err := s.backend.RateBreakdown(ctx, ibeapi.RateBreakdownRequest{
		StartDate:  it.StartDate.Format(dateLayout),
		EndDate:    it.EndDate.Format(dateLayout),
		PropertyID: it.PropertyID,
		RoomTypeID: it.Room.RoomTypeID,
	})
	if err != nil {
		return b, err
	}

	taxes, err := s.config.TaxConfig(ctx, it.PropertyID)
	if err != nil {
		return b, err
	}

	return pricing.Compute(rates, it.Nights(), pricing.Quote{
		RoomCount:      it.Rooms,
		Promotion:      it.Promotion,
		TaxRate:        taxes.TaxRate,
		VATRate:        taxes.VATRate,
		DueNowFraction: taxes.DueNowFraction,
	})
}

func (s *Service) buildBookingRequest(it *Itinerary, payment PaymentForm, b pricing.Breakdown) ibeapi.BookingRequest {
	req := ibeapi.BookingRequest{
		StartDate:    it.StartDate.Format(dateLayout),
		EndDate:      it.EndDate.Format(dateLayout),
		RoomCount:    it.Rooms,
		AdultCount:   it.Counts[guest.TypeAdults],
		TeenCount:    it.Counts[guest.TypeTeens],
		KidCount:     it.Counts[guest.TypeKids],
		SeniorCount:  it.Counts[guest.TypeSeniors],
		TenantID:     s.tenantID,
		PropertyID:   it.PropertyID,
		RoomTypeID:   it.Room.RoomTypeID,
		RoomName:     it.Room.RoomTypeName,
		RoomImageURL: it.ImageURL,
		CostInfo: ibeapi.CostInfo{
			TotalCost:         b.Total,
			AmountDueAtResort: b.DueAtResort,
			NightlyRate:       b.AverageNightly,
			Taxes:             b.Taxes,
			VAT:               b.VAT,
		},
		GuestInfo: ibeapi.GuestInfo{
			FirstName:     it.Traveler.FirstName,
			LastName:      it.Traveler.LastName,
			Phone:         it.Traveler.Phone,
			EmailID:       it.Traveler.Email,
			HasSubscribed: it.Traveler.HasSubscribed,
		},
		BillingInfo: ibeapi.BillingInfo{
			FirstName: it.Billing.FirstName,
			LastName:  it.Billing.LastName,
			Address1:  it.Billing.Address1,
			Address2:  it.Billing.Address2,
			City:      it.Billing.City,
			Zipcode:   it.Billing.Zipcode,
			State:     it.Billing.State,
			Country:   it.Billing.Country,
			Phone:     it.Billing.Phone,
			EmailID:   it.Billing.Email,
		},
		PaymentInfo: ibeapi.PaymentInfo{
			CardNumber:  payment.CardNumber,
			ExpiryMonth: payment.ExpiryMonth,
			ExpiryYear:  payment.ExpiryYear,
		},
	}
	if it.Promotion != nil {
		req.PromotionInfo = &ibeapi.PromotionInfo{
			PromotionID:          it.Promotion.PromotionID,
			PromotionTitle:       it.Promotion.PromotionTitle,
			PriceFactor:          it.Promotion.PriceFactor,
			PromotionDescription: it.Promotion.PromotionDescription,
		}
	}
	return req
}
