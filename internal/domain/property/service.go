package property

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/domain/itinerary"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// ErrUnknownProperty means the tenant config has no entry for the property.
var ErrUnknownProperty = errors.New("unknown property")

const defaultCacheTTL = 5 * time.Minute

// ConfigClient is the slice of the backend client the property service
// needs.
type ConfigClient interface {
	FetchConfig(ctx context.Context, tenantID int) (*ibeapi.TenantConfig, error)
}

// Service serves the tenant configuration document and the typed views the
// engines take from it. The document changes rarely, so it is cached for a
// short TTL rather than fetched per request.
type Service struct {
	client   ConfigClient
	tenantID int
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	cached    *ibeapi.TenantConfig
	fetchedAt time.Time
}

// NewService creates property config service
func NewService(client ConfigClient, tenantID int) *Service {
	return &Service{
		client:   client,
		tenantID: tenantID,
		ttl:      defaultCacheTTL,
		now:      time.Now,
	}
}

// Tenant returns the full tenant configuration document.
func (s *Service) Tenant(ctx context.Context) (*ibeapi.TenantConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	cfg, err := s.client.FetchConfig(ctx, s.tenantID)
	if err != nil {
		// Serve the stale copy over an error if there is one.
		if s.cached != nil {
			return s.cached, nil
		}
		return nil, err
	}
	s.cached = cfg
	s.fetchedAt = s.now()
	return cfg, nil
}

// Property returns one property's configuration.
func (s *Service) Property(ctx context.Context, propertyID int) (ibeapi.PropertyConfig, error) {
	cfg, err := s.Tenant(ctx)
	if err != nil {
		return ibeapi.PropertyConfig{}, err
	}
	prop, ok := cfg.Properties[strconv.Itoa(propertyID)]
	if !ok {
		return ibeapi.PropertyConfig{}, ErrUnknownProperty
	}
	return prop, nil
}

// CapacityPolicy returns the guest allocation limits of a property.
func (s *Service) CapacityPolicy(ctx context.Context, propertyID int) (guest.CapacityPolicy, error) {
	prop, err := s.Property(ctx, propertyID)
	if err != nil {
		return guest.CapacityPolicy{}, err
	}
	return guest.CapacityPolicy{
		MaxRoomsAllowed:     prop.MaximumRoomsAllowed,
		MaxGuestsPerRoom:    prop.MaximumGuestsInRoom,
		MaxBedsPerRoom:      prop.MaximumBedsInRoom,
		MaxLengthOfStayDays: prop.MaximumLengthOfStay,
	}, nil
}

// PageSize returns the room listing page size of a property.
func (s *Service) PageSize(ctx context.Context, propertyID int) (int, error) {
	prop, err := s.Property(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	if prop.PageSize < 1 {
		return 0, ErrUnknownProperty
	}
	return prop.PageSize, nil
}

// TaxConfig returns the pricing fractions of a property. The config carries
// percentages; engines work in fractions.
func (s *Service) TaxConfig(ctx context.Context, propertyID int) (itinerary.TaxConfig, error) {
	prop, err := s.Property(ctx, propertyID)
	if err != nil {
		return itinerary.TaxConfig{}, err
	}
	return itinerary.TaxConfig{
		TaxRate:        prop.TaxPercentage / 100,
		VATRate:        prop.VATPercentage / 100,
		DueNowFraction: prop.DueNowPercentage / 100,
	}, nil
}
