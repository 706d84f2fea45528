package property

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

type stubConfigClient struct {
	cfg   *ibeapi.TenantConfig
	err   error
	calls int
}

func (s *stubConfigClient) FetchConfig(_ context.Context, _ int) (*ibeapi.TenantConfig, error) {
	s.calls++
	return s.cfg, s.err
}

func testTenantConfig() *ibeapi.TenantConfig {
	return &ibeapi.TenantConfig{
		TenantID:   1,
		TenantName: "Kickdrum Resorts",
		Properties: map[string]ibeapi.PropertyConfig{
			"11": {
				PropertyID:          11,
				MaximumRoomsAllowed: 3,
				MaximumGuestsInRoom: 4,
				MaximumBedsInRoom:   4,
				MaximumLengthOfStay: 14,
				PageSize:            3,
				TaxPercentage:       12,
				VATPercentage:       5,
				DueNowPercentage:    40,
			},
		},
	}
}

func TestTenantCachesDocument(t *testing.T) {
	client := &stubConfigClient{cfg: testTenantConfig()}
	svc := NewService(client, 1)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		if _, err := svc.Tenant(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", client.calls)
	}

	now = now.Add(6 * time.Minute)
	if _, err := svc.Tenant(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected refetch after ttl, got %d calls", client.calls)
	}
}

func TestTenantServesStaleOnUpstreamFailure(t *testing.T) {
	client := &stubConfigClient{cfg: testTenantConfig()}
	svc := NewService(client, 1)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if _, err := svc.Tenant(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client.err = errors.New("upstream down")
	now = now.Add(time.Hour)
	cfg, err := svc.Tenant(context.Background())
	if err != nil {
		t.Fatalf("expected stale config, got error: %v", err)
	}
	if cfg.TenantName != "Kickdrum Resorts" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestCapacityPolicyMapping(t *testing.T) {
	svc := NewService(&stubConfigClient{cfg: testTenantConfig()}, 1)

	policy, err := svc.CapacityPolicy(context.Background(), 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.MaxRoomsAllowed != 3 || policy.MaxGuestsPerRoom != 4 || policy.MaxBedsPerRoom != 4 || policy.MaxLengthOfStayDays != 14 {
		t.Errorf("unexpected policy: %+v", policy)
	}
}

func TestTaxConfigConvertsPercentages(t *testing.T) {
	svc := NewService(&stubConfigClient{cfg: testTenantConfig()}, 1)

	taxes, err := svc.TaxConfig(context.Background(), 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taxes.TaxRate != 0.12 || taxes.VATRate != 0.05 || taxes.DueNowFraction != 0.4 {
		t.Errorf("unexpected fractions: %+v", taxes)
	}
}

func TestUnknownProperty(t *testing.T) {
	svc := NewService(&stubConfigClient{cfg: testTenantConfig()}, 1)

	if _, err := svc.PageSize(context.Background(), 99); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
}
