package promotion

import (
	"context"
	"time"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

const dateLayout = "2006-01-02"

// PromotionClient is the slice of the backend client the promotion service
// needs.
type PromotionClient interface {
	Promotions(ctx context.Context, query ibeapi.PromotionQuery) ([]ibeapi.Promotion, error)
	PromoCode(ctx context.Context, tenantID, roomTypeID int, code string) (*ibeapi.Promotion, error)
}

// Service lists applicable promotions and validates typed promo codes.
type Service struct {
	client   PromotionClient
	tenantID int
}

// NewService creates promotion service
func NewService(client PromotionClient, tenantID int) *Service {
	return &Service{client: client, tenantID: tenantID}
}

// Applicable lists the promotions valid for a stay. Deactivated promotions
// and those demanding a longer stay are filtered out here so every promotion
// the UI shows can actually be applied.
func (s *Service) Applicable(ctx context.Context, start, end time.Time, military, senior bool) ([]ibeapi.Promotion, error) {
	promos, err := s.client.Promotions(ctx, ibeapi.PromotionQuery{
		StartDate:           start.Format(dateLayout),
		EndDate:             end.Format(dateLayout),
		IsMilitaryPersonnel: military,
		IsSeniorCitizen:     senior,
	})
	if err != nil {
		return nil, err
	}

	nights := int(end.Sub(start).Hours() / 24)
	out := make([]ibeapi.Promotion, 0, len(promos))
	for _, p := range promos {
		if p.IsDeactivated {
			continue
		}
		if p.MinimumDaysOfStay > 0 && nights < p.MinimumDaysOfStay {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Validate checks a typed promo code against a room type.
func (s *Service) Validate(ctx context.Context, roomTypeID int, code string) (*ibeapi.Promotion, error) {
	return s.client.PromoCode(ctx, s.tenantID, roomTypeID, code)
}
