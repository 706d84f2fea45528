package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func threeNights(rate float64) []ibeapi.DateRate {
	return []ibeapi.DateRate{
		{Date: "2024-05-20", Rate: rate},
		{Date: "2024-05-21", Rate: rate},
		{Date: "2024-05-22", Rate: rate},
	}
}

func TestComputeFullBreakdown(t *testing.T) {
	q := Quote{
		RoomCount:      2,
		Promotion:      &ibeapi.Promotion{PromotionID: 3, PriceFactor: 0.8},
		TaxRate:        0.12,
		VATRate:        0.05,
		DueNowFraction: 0.4,
	}

	b, err := Compute(threeNights(100), 3, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"roomsTotal", b.RoomsTotal, 600.00},
		{"promoDiscount", b.PromoDiscount, 120.00},
		{"subtotal", b.Subtotal, 480.00},
		{"taxes", b.Taxes, 57.60},
		{"vat", b.VAT, 24.00},
		{"total", b.Total, 561.60},
		{"dueNow", b.DueNow, 224.64},
		{"dueAtResort", b.DueAtResort, 336.96},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s: expected %.2f, got %.10f", c.name, c.want, c.got)
		}
	}
}

// Each half of the deposit split is rounded on its own multiply, so a
// half-cent total rounds up on both sides.
func TestComputeDepositHalvesRoundIndependently(t *testing.T) {
	nights := []ibeapi.DateRate{{Date: "2024-05-20", Rate: 100.25}}
	q := Quote{RoomCount: 1, DueNowFraction: 0.5}

	b, err := Compute(nights, 1, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(b.DueNow, 50.13) {
		t.Errorf("dueNow: expected 50.13, got %.10f", b.DueNow)
	}
	if !approx(b.DueAtResort, 50.13) {
		t.Errorf("dueAtResort: expected 50.13, got %.10f", b.DueAtResort)
	}
}

func TestComputeWithoutPromotion(t *testing.T) {
	q := Quote{RoomCount: 1, TaxRate: 0.12, VATRate: 0.05, DueNowFraction: 0.4}

	b, err := Compute(threeNights(100), 3, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PromoDiscount != 0 {
		t.Errorf("expected no discount, got %.2f", b.PromoDiscount)
	}
	if !approx(b.Subtotal, 300.00) || !approx(b.Total, 351.00) {
		t.Errorf("unexpected figures: subtotal=%.2f total=%.2f", b.Subtotal, b.Total)
	}
}

func TestComputeFullPaymentPromotion(t *testing.T) {
	q := Quote{
		RoomCount:      1,
		Promotion:      &ibeapi.Promotion{PromotionID: FullPaymentPromotionID, PriceFactor: 0.9},
		TaxRate:        0.12,
		VATRate:        0.05,
		DueNowFraction: 0.4,
	}

	b, err := Compute(threeNights(100), 3, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.FullPaymentOnly {
		t.Fatal("expected full payment flag")
	}
	if !approx(b.DueNow, Round2(b.Total)) || b.DueAtResort != 0 {
		t.Errorf("expected everything due now, got dueNow=%.2f dueAtResort=%.2f total=%.2f", b.DueNow, b.DueAtResort, b.Total)
	}
}

func TestComputeIncompleteRates(t *testing.T) {
	q := Quote{RoomCount: 1, DueNowFraction: 0.4}

	if _, err := Compute(nil, 3, q); !errors.Is(err, ErrIncompleteRateData) {
		t.Errorf("nil rates: expected ErrIncompleteRateData, got %v", err)
	}
	if _, err := Compute(threeNights(100)[:2], 3, q); !errors.Is(err, ErrIncompleteRateData) {
		t.Errorf("short schedule: expected ErrIncompleteRateData, got %v", err)
	}
	long := append(threeNights(100), ibeapi.DateRate{Date: "2024-05-23", Rate: 100})
	if _, err := Compute(long, 3, q); !errors.Is(err, ErrIncompleteRateData) {
		t.Errorf("long schedule: expected ErrIncompleteRateData, got %v", err)
	}
	if _, err := Compute(nil, 0, q); !errors.Is(err, ErrIncompleteRateData) {
		t.Errorf("zero nights: expected ErrIncompleteRateData, got %v", err)
	}
}

func TestComputeDeterministic(t *testing.T) {
	nights := []ibeapi.DateRate{
		{Date: "2024-05-20", Rate: 133.33},
		{Date: "2024-05-21", Rate: 97.77},
		{Date: "2024-05-22", Rate: 101.01},
	}
	q := Quote{
		RoomCount:      3,
		Promotion:      &ibeapi.Promotion{PromotionID: 2, PriceFactor: 0.85},
		TaxRate:        0.0825,
		VATRate:        0.05,
		DueNowFraction: 0.35,
	}

	first, err := Compute(nights, 3, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := Compute(nights, 3, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1.005, 1.01},
		{1.004, 1.00},
		{-1.005, -1.01},
		{-1.004, -1.00},
		{2.675, 2.68},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
