package ibeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrUpstream marks any non-2xx answer from the backend.
	ErrUpstream = errors.New("ibe backend error")
	// ErrNotFound marks a 404 from the backend.
	ErrNotFound = errors.New("ibe backend: not found")
)

// Client represents the IBE backend HTTP client. All booking-engine business
// logic (availability, persistence, payment) lives behind it.
type Client struct {
	baseURL string
	apiKey  string
	ua      string
	http    *http.Client
}

// NewClient creates a new backend client.
func NewClient(baseURL, apiKey string, timeout time.Duration, ua string) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		ua:      ua,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// FetchConfig fetches the tenant configuration document.
func (c *Client) FetchConfig(ctx context.Context, tenantID int) (*TenantConfig, error) {
	q := url.Values{"tenantId": {strconv.Itoa(tenantID)}}
	var cfg TenantConfig
	if err := c.do(ctx, http.MethodGet, "/api/v1/config", q, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchRooms runs one page of the room search.
func (c *Client) SearchRooms(ctx context.Context, page, pageSize int, req RoomSearchRequest) (*RoomSearchResponse, error) {
	q := url.Values{
		"pageNumber": {strconv.Itoa(page)},
		"pageSize":   {strconv.Itoa(pageSize)},
	}
	var resp RoomSearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/rooms", q, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RateBreakdown fetches the per-night rate schedule for a stay.
func (c *Client) RateBreakdown(ctx context.Context, req RateBreakdownRequest) ([]DateRate, error) {
	var resp rateBreakdownResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/rate-breakdown", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.RoomRateList, nil
}

// MinimumRates fetches the date-to-minimum-nightly-rate map for a property.
// Sparse: dates without inventory are simply absent.
func (c *Client) MinimumRates(ctx context.Context, propertyID int) (map[string]float64, error) {
	q := url.Values{"propertyId": {strconv.Itoa(propertyID)}}
	rates := map[string]float64{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/minimum-rates", q, nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// Promotions lists promotions applicable to a stay.
func (c *Client) Promotions(ctx context.Context, query PromotionQuery) ([]Promotion, error) {
	var promos []Promotion
	if err := c.do(ctx, http.MethodPost, "/api/v1/promotion", nil, query, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// PromoCode validates a typed promo code against a room type.
func (c *Client) PromoCode(ctx context.Context, tenantID, roomTypeID int, code string) (*Promotion, error) {
	q := url.Values{
		"tenantId":       {strconv.Itoa(tenantID)},
		"roomTypeId":     {strconv.Itoa(roomTypeID)},
		"inputPromoCode": {code},
	}
	var promo Promotion
	if err := c.do(ctx, http.MethodGet, "/api/v1/room-promocode", q, nil, &promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

// CreateBooking submits a booking and returns the backend booking id.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (int64, error) {
	var resp bookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/create-booking", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.BookingID, nil
}

// BookingsByEmail lists the bookings made with an email address.
func (c *Client) BookingsByEmail(ctx context.Context, email string) ([]BookingSummary, error) {
	q := url.Values{"email": {email}}
	var list []BookingSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/my-bookings", q, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Booking fetches a single booking.
func (c *Client) Booking(ctx context.Context, bookingID int64) (*BookingSummary, error) {
	var b BookingSummary
	path := "/api/v1/booking/" + strconv.FormatInt(bookingID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SendOTP asks the backend to mail a cancellation OTP for a booking.
func (c *Client) SendOTP(ctx context.Context, bookingID int64, email string) error {
	body := map[string]any{"bookingId": bookingID, "email": email}
	return c.do(ctx, http.MethodPost, "/api/v1/send-otp", nil, body, nil)
}

// CancelBooking cancels a booking after OTP verification.
func (c *Client) CancelBooking(ctx context.Context, bookingID int64, otp string) error {
	q := url.Values{"otp": {otp}}
	path := "/api/v1/booking/" + strconv.FormatInt(bookingID, 10)
	return c.do(ctx, http.MethodDelete, path, q, nil, nil)
}

// RoomReviews lists the reviews of a room type.
func (c *Client) RoomReviews(ctx context.Context, tenantID, roomTypeID int) ([]Review, error) {
	path := fmt.Sprintf("/api/v1/room-review/%d/%d", tenantID, roomTypeID)
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview posts a review for a room type.
func (c *Client) SubmitReview(ctx context.Context, req ReviewRequest) error {
	path := fmt.Sprintf("/api/v1/room-review/%d/%d", req.TenantID, req.RoomTypeID)
	return c.do(ctx, http.MethodPost, path, nil, req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil || c.http == nil {
		return fmt.Errorf("ibe backend request error: client is nil")
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return fmt.Errorf("ibe backend config error: base_url is empty")
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ibe backend request error: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("ibe backend request error: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("%w: status=%d body=<failed to read body: %v>", ErrUpstream, resp.StatusCode, readErr)
		}
		return fmt.Errorf("%w: status=%d body=%s", ErrUpstream, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ibe backend decode error: %w", err)
	}
	return nil
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("ibe backend timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("ibe backend network error: %w", err)
	}
	return fmt.Errorf("ibe backend request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}
