package rates

import (
	"context"
	"math"
	"time"
)

// RateSource is the slice of the backend client the rate service needs.
type RateSource interface {
	MinimumRates(ctx context.Context, propertyID int) (map[string]float64, error)
}

// Service aggregates nightly minimum rates for the availability calendar.
type Service struct {
	source RateSource
}

// NewService creates rates service
func NewService(source RateSource) *Service {
	return &Service{source: source}
}

// Calendar returns the per-date minimum nightly rates of a property. The map
// is sparse; dates without inventory are absent.
func (s *Service) Calendar(ctx context.Context, propertyID int) (map[string]float64, error) {
	return s.source.MinimumRates(ctx, propertyID)
}

// RangeMinimum returns the lowest nightly rate for a stay. ok is false when
// no date in the range carries a rate.
func (s *Service) RangeMinimum(ctx context.Context, propertyID int, start, end time.Time) (float64, bool, error) {
	rates, err := s.source.MinimumRates(ctx, propertyID)
	if err != nil {
		return 0, false, err
	}
	minimum := MinimumRateInRange(rates, start, end)
	if math.IsInf(minimum, 1) {
		return 0, false, nil
	}
	return minimum, true, nil
}
