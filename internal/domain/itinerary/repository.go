package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository stores at most one itinerary per session. A zero TTL means the
// itinerary does not expire.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*Itinerary, error)
	Save(ctx context.Context, it *Itinerary, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type redisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a Redis-backed itinerary store. Redis TTLs
// double as the checkout countdown: an expired hold simply vanishes.
func NewRedisRepository(client *redis.Client) Repository {
	return &redisRepository{client: client}
}

func itineraryKey(sessionID string) string {
	return "itinerary:" + sessionID
}

func (r *redisRepository) Get(ctx context.Context, sessionID string) (*Itinerary, error) {
	raw, err := r.client.Get(ctx, itineraryKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("itinerary store: %w", err)
	}

	var it Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, fmt.Errorf("itinerary store: corrupt record: %w", err)
	}
	return &it, nil
}

func (r *redisRepository) Save(ctx context.Context, it *Itinerary, ttl time.Duration) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("itinerary store: %w", err)
	}
	if err := r.client.Set(ctx, itineraryKey(it.SessionID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("itinerary store: %w", err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, itineraryKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("itinerary store: %w", err)
	}
	return nil
}
