package booking

import (
	"context"

	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
)

// Client is the slice of the backend client the booking boundary needs.
type Client interface {
	BookingsByEmail(ctx context.Context, email string) ([]ibeapi.BookingSummary, error)
	Booking(ctx context.Context, bookingID int64) (*ibeapi.BookingSummary, error)
	SendOTP(ctx context.Context, bookingID int64, email string) error
	CancelBooking(ctx context.Context, bookingID int64, otp string) error
}

// Service is the post-booking boundary: listing past bookings and the
// OTP-gated cancellation flow. All state lives in the backend.
type Service struct {
	client Client
}

// NewService creates booking service
func NewService(client Client) *Service {
	return &Service{client: client}
}

// MyBookings lists the bookings made under an email address.
func (s *Service) MyBookings(ctx context.Context, email string) ([]ibeapi.BookingSummary, error) {
	return s.client.BookingsByEmail(ctx, email)
}

// Get fetches one booking.
func (s *Service) Get(ctx context.Context, bookingID int64) (*ibeapi.BookingSummary, error) {
	return s.client.Booking(ctx, bookingID)
}

// RequestCancellation mails a one-time code to the booking's email.
func (s *Service) RequestCancellation(ctx context.Context, bookingID int64, email string) error {
	return s.client.SendOTP(ctx, bookingID, email)
}

// Cancel cancels a booking with the mailed one-time code.
func (s *Service) Cancel(ctx context.Context, bookingID int64, otp string) error {
	return s.client.CancelBooking(ctx, bookingID, otp)
}
