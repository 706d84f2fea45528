package pricing

import (
	"errors"
	"math"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// ErrIncompleteRateData means the nightly rate schedule does not match the
// stay, so no price can be quoted.
var ErrIncompleteRateData = errors.New("nightly rates do not match the stay")

// FullPaymentPromotionID marks the promotion that collects the entire total
// up front instead of the usual deposit split.
const FullPaymentPromotionID = 5

// Quote carries everything needed to price a stay besides the nightly rates.
// Rates and fractions come from the property config; the promotion is
// optional.
type Quote struct {
	RoomCount      int
	Promotion      *ibeapi.Promotion
	TaxRate        float64
	VATRate        float64
	DueNowFraction float64
}

// Breakdown is the priced stay. Charge lines are rounded to cents exactly
// once, in a fixed order, so the same inputs always produce the same
// figures; RoomsTotal and Subtotal carry the unrounded sums. The deposit
// split is two independent multiplies on Total, so the halves can each
// round up and overshoot Total by a cent.
type Breakdown struct {
	Nights          int     `json:"nights"`
	RoomCount       int     `json:"roomCount"`
	RoomsTotal      float64 `json:"roomsTotal"`
	AverageNightly  float64 `json:"averageNightly"`
	PromoDiscount   float64 `json:"promoDiscount"`
	Subtotal        float64 `json:"subtotal"`
	Taxes           float64 `json:"taxes"`
	VAT             float64 `json:"vat"`
	Total           float64 `json:"total"`
	DueNow          float64 `json:"dueNow"`
	DueAtResort     float64 `json:"dueAtResort"`
	FullPaymentOnly bool    `json:"fullPaymentOnly"`
}

// Round2 rounds to cents, half away from zero.
func Round2(x float64) float64 {
	if x >= 0 {
		return math.Floor(x*100+0.5) / 100
	}
	return math.Ceil(x*100-0.5) / 100
}

// Compute prices a stay from its nightly rate schedule. nightsRequired is
// the stay length; the schedule must cover exactly those nights. The charge
// lines are derived in a fixed order with one rounding each: discount,
// taxes, VAT, total, then the deposit split.
func Compute(nights []ibeapi.DateRate, nightsRequired int, q Quote) (Breakdown, error) {
	var b Breakdown
	if nightsRequired < 1 || len(nights) != nightsRequired {
		return b, ErrIncompleteRateData
	}

	b.Nights = len(nights)
	b.RoomCount = q.RoomCount
	if b.RoomCount < 1 {
		b.RoomCount = 1
	}

	for _, night := range nights {
		b.RoomsTotal += night.Rate
	}
	b.RoomsTotal *= float64(b.RoomCount)
	b.AverageNightly = b.RoomsTotal / float64(b.Nights) / float64(b.RoomCount)

	if q.Promotion != nil {
		b.PromoDiscount = Round2(b.RoomsTotal * (1 - q.Promotion.PriceFactor))
	}
	b.Subtotal = b.RoomsTotal - b.PromoDiscount
	b.Taxes = Round2(b.Subtotal * q.TaxRate)
	b.VAT = Round2(b.Subtotal * q.VATRate)
	b.Total = Round2(b.Subtotal + b.Taxes + b.VAT)

	if q.Promotion != nil && q.Promotion.PromotionID == FullPaymentPromotionID {
		b.FullPaymentOnly = true
		b.DueNow = b.Total
		b.DueAtResort = 0
		return b, nil
	}

	b.DueNow = Round2(b.Total * q.DueNowFraction)
	b.DueAtResort = Round2(b.Total * (1 - q.DueNowFraction))
	return b, nil
}
