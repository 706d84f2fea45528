package itinerary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

type stubBackend struct {
	rates       []ibeapi.DateRate
	ratesErr    error
	bookingID   int64
	bookingErr  error
	lastBooking *ibeapi.BookingRequest
}

func (s *stubBackend) RateBreakdown(_ context.Context, _ ibeapi.RateBreakdownRequest) ([]ibeapi.DateRate, error) {
	return s.rates, s.ratesErr
}

func (s *stubBackend) CreateBooking(_ context.Context, req ibeapi.BookingRequest) (int64, error) {
	s.lastBooking = &req
	return s.bookingID, s.bookingErr
}

type stubConfig struct{}

func (stubConfig) TaxConfig(_ context.Context, _ int) (TaxConfig, error) {
	return TaxConfig{TaxRate: 0.12, VATRate: 0.05, DueNowFraction: 0.4}, nil
}

type fixture struct {
	svc     *Service
	backend *stubBackend
	clock   *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := &stubBackend{
		rates: []ibeapi.DateRate{
			{Date: "2024-05-20", Rate: 100},
			{Date: "2024-05-21", Rate: 100},
			{Date: "2024-05-22", Rate: 100},
		},
		bookingID: 7777,
	}
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := NewService(NewMemoryRepository(), backend, stubConfig{}, 1, 10*time.Minute)
	svc.now = func() time.Time { return now }
	return &fixture{svc: svc, backend: backend, clock: &now}
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func testSelection() Selection {
	return Selection{
		PropertyID: 11,
		Room:       ibeapi.RoomOffer{RoomTypeID: 42, RoomTypeName: "GARDEN SUITE", Price: 100},
		ImageURL:   "https://img.example.com/garden.jpg",
		StartDate:  time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC),
		Counts:     guest.Counts{guest.TypeAdults: 2, guest.TypeKids: 1},
		Rooms:      1,
		Beds:       2,
	}
}

func travelerForm() TravelerForm {
	return TravelerForm{FirstName: "Ada", LastName: "Lovelace", Phone: "5551234567", Email: "ada@example.com"}
}

func billingForm() BillingForm {
	return BillingForm{
		FirstName: "Ada", LastName: "Lovelace",
		Address1: "1 Analytical Way", City: "London", Zipcode: "12345",
		State: "LDN", Country: "UK", Phone: "5551234567", Email: "ada@example.com",
	}
}

func paymentForm() PaymentForm {
	return PaymentForm{CardNumber: "4111111111111111", ExpiryMonth: "09", ExpiryYear: "2027"}
}

func TestSelectStartsHold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	it, err := f.svc.Select(ctx, "s1", testSelection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.State != StateSelected {
		t.Errorf("expected selected state, got %s", it.State)
	}
	if want := f.clock.Add(10 * time.Minute); !it.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, it.ExpiresAt)
	}
	if it.Nights() != 3 {
		t.Errorf("expected 3 nights, got %d", it.Nights())
	}
}

func TestSelectReplacesExistingItinerary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Select(ctx, "s1", testSelection())
	f.svc.BeginCheckout(ctx, "s1")
	f.svc.SaveTraveler(ctx, "s1", travelerForm())

	other := testSelection()
	other.Room = ibeapi.RoomOffer{RoomTypeID: 43, RoomTypeName: "COUPLE SUITE"}
	it, err := f.svc.Select(ctx, "s1", other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Room.RoomTypeID != 43 || it.State != StateSelected {
		t.Errorf("expected fresh itinerary for new room, got %+v", it)
	}
	if it.Traveler != nil {
		t.Error("expected forms cleared on replacement")
	}
}

func TestCheckoutRetainsFormsOnBackNavigation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Select(ctx, "s1", testSelection())
	if _, err := f.svc.BeginCheckout(ctx, "s1"); err != nil {
		t.Fatalf("begin checkout: %v", err)
	}
	if _, err := f.svc.SaveTraveler(ctx, "s1", travelerForm()); err != nil {
		t.Fatalf("save traveler: %v", err)
	}
	if _, err := f.svc.SaveBilling(ctx, "s1", billingForm()); err != nil {
		t.Fatalf("save billing: %v", err)
	}
	if _, err := f.svc.SavePayment(ctx, "s1", paymentForm()); err != nil {
		t.Fatalf("save payment: %v", err)
	}

	if _, err := f.svc.BackToRooms(ctx, "s1"); err != nil {
		t.Fatalf("back to rooms: %v", err)
	}

	it, err := f.svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if it.State != StateSelected {
		t.Errorf("expected selected after back-nav, got %s", it.State)
	}
	if it.Traveler == nil || it.Billing == nil || it.Payment == nil {
		t.Fatal("expected all forms retained after back-nav")
	}
	if it.Payment.CardNumber != "************1111" {
		t.Errorf("expected stored card masked, got %q", it.Payment.CardNumber)
	}
}

func TestFormSavesRequireCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Select(ctx, "s1", testSelection())
	if _, err := f.svc.SaveTraveler(ctx, "s1", travelerForm()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestBookRequiresFormsAndState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Select(ctx, "s1", testSelection())
	if _, err := f.svc.Book(ctx, "s1", BookRequest{Payment: paymentForm()}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("book before checkout: expected ErrInvalidTransition, got %v", err)
	}

	f.svc.BeginCheckout(ctx, "s1")
	if _, err := f.svc.Book(ctx, "s1", BookRequest{Payment: paymentForm()}); !errors.Is(err, ErrFormsIncomplete) {
		t.Fatalf("book without forms: expected ErrFormsIncomplete, got %v", err)
	}
}

func TestBookCancelsCountdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Select(ctx, "s1", testSelection())
	f.svc.BeginCheckout(ctx, "s1")
	f.svc.SaveTraveler(ctx, "s1", travelerForm())
	f.svc.SaveBilling(ctx, "s1", billingForm())

	it, err := f.svc.Book(ctx, "s1", BookRequest{Payment: paymentForm()})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if it.State != StateBooked || it.BookingID != 7777 {
		t.Fatalf("expected booked itinerary, got %+v", it)
	}

	// Well past the checkout window; a booked itinerary must survive.
	f.advance(time.Hour)
	it, err = f.svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get after window: %v", err)
	}
	if it.State != StateBooked {
		t.Errorf("expected booked state retained, got %s", it.State)
	}
	if _, err := f.svc.Book(ctx, "s1", BookRequest{Payment: paymentForm()}); !errors.Is(err, ErrAlreadyBooked) {
		t.Errorf("expected ErrAlreadyBooked on rebook, got %v", err)
	}
}

func TestExpiredHoldLapses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Select(ctx, "s1", testSelection())
	f.advance(11 * time.Minute)

	if _, err := f.svc.BeginCheckout(ctx, "s1"); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	// The lapsed itinerary is gone on the next read.
	if _, err := f.svc.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after lapse, got %v", err)
	}
}

func TestBookBuildsBackendRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sel := testSelection()
	sel.Promotion = &ibeapi.Promotion{PromotionID: 3, PromotionTitle: "Long stay", PriceFactor: 0.8}
	f.svc.Select(ctx, "s1", sel)
	f.svc.BeginCheckout(ctx, "s1")
	f.svc.SaveTraveler(ctx, "s1", travelerForm())
	f.svc.SaveBilling(ctx, "s1", billingForm())

	it, err := f.svc.Book(ctx, "s1", BookRequest{Payment: paymentForm()})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	req := f.backend.lastBooking
	if req == nil {
		t.Fatal("expected booking request sent")
	}
	if req.StartDate != "2024-05-20" || req.EndDate != "2024-05-23" {
		t.Errorf("unexpected dates: %s..%s", req.StartDate, req.EndDate)
	}
	if req.AdultCount != 2 || req.KidCount != 1 || req.RoomCount != 1 {
		t.Errorf("unexpected counts: %+v", req)
	}
	if req.TenantID != 1 || req.PropertyID != 11 || req.RoomTypeID != 42 {
		t.Errorf("unexpected ids: %+v", req)
	}
	if req.CostInfo.TotalCost != 561.60 {
		t.Errorf("expected total 561.60, got %v", req.CostInfo.TotalCost)
	}
	if req.PromotionInfo == nil || req.PromotionInfo.PromotionID != 3 {
		t.Errorf("expected promotion forwarded, got %+v", req.PromotionInfo)
	}
	if req.PaymentInfo.CardNumber != "4111111111111111" {
		t.Errorf("expected full card number sent upstream, got %q", req.PaymentInfo.CardNumber)
	}
	if it.Payment.CardNumber == "4111111111111111" {
		t.Error("stored itinerary must not keep the full card number")
	}
}

func TestPriceBreakdownFailsOnShortSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.backend.rates = f.backend.rates[:2]
	f.svc.Select(ctx, "s1", testSelection())
	if _, err := f.svc.PriceBreakdown(ctx, "s1"); err == nil {
		t.Fatal("expected error for incomplete rate schedule")
	}
}
