package review

import (
	"context"
	"errors"
	"strings"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// ErrInvalidRating means the rating is outside the 1..5 scale.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Client is the slice of the backend client the review service needs.
type Client interface {
	RoomReviews(ctx context.Context, tenantID, roomTypeID int) ([]ibeapi.Review, error)
	SubmitReview(ctx context.Context, req ibeapi.ReviewRequest) error
}

// Service proxies room reviews to the backend.
type Service struct {
	client   Client
	tenantID int
}

// NewService creates review service
func NewService(client Client, tenantID int) *Service {
	return &Service{client: client, tenantID: tenantID}
}

// List returns the reviews of a room type.
func (s *Service) List(ctx context.Context, roomTypeID int) ([]ibeapi.Review, error) {
	return s.client.RoomReviews(ctx, s.tenantID, roomTypeID)
}

// Submit posts a review under the signed-in user's name.
func (s *Service) Submit(ctx context.Context, roomTypeID int, username string, rating float64, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return s.client.SubmitReview(ctx, ibeapi.ReviewRequest{
		TenantID:   s.tenantID,
		RoomTypeID: roomTypeID,
		Username:   username,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	})
}
