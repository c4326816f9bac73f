package redisad

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"hotel_booking/internal/domain"
)

const countField = "reservation_count"

// addReservations adjusts the counter atomically, flooring it at zero.
// A negative delta on a missing record returns nil so nothing is created.
var addReservations = redis.NewScript(`
local delta = tonumber(ARGV[1])
if redis.call('EXISTS', KEYS[1]) == 0 and delta < 0 then
  return false
end
local count = tonumber(redis.call('HGET', KEYS[1], 'reservation_count') or '0') + delta
if count < 0 then
  count = 0
end
redis.call('HSET', KEYS[1], 'reservation_count', count)
return count
`)

// LoyaltyStore keeps one hash per user holding the reservation count.
// Status and discount are derived from the count on every read.
type LoyaltyStore struct{ c *redis.Client }

func New(addr, pass string, db int) *LoyaltyStore {
	return &LoyaltyStore{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewWithClient(c *redis.Client) *LoyaltyStore { return &LoyaltyStore{c: c} }

func (s *LoyaltyStore) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *LoyaltyStore) Close() error { return s.c.Close() }

func key(username string) string { return "loyalty:" + username }

func toLoyalty(username string, count int) domain.Loyalty {
	status, discount := domain.Tier(count)
	return domain.Loyalty{Username: username, ReservationCount: count, Status: status, Discount: discount}
}

func (s *LoyaltyStore) Get(ctx context.Context, username string) (domain.Loyalty, error) {
	v, err := s.c.HGet(ctx, key(username), countField).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Loyalty{}, fmt.Errorf("loyalty %s: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Loyalty{}, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return domain.Loyalty{}, fmt.Errorf("loyalty %s: bad count %q: %w", username, v, err)
	}
	return toLoyalty(username, n), nil
}

func (s *LoyaltyStore) Enroll(ctx context.Context, username string) (domain.Loyalty, bool, error) {
	created, err := s.c.HSetNX(ctx, key(username), countField, 0).Result()
	if err != nil {
		return domain.Loyalty{}, false, err
	}
	l, err := s.Get(ctx, username)
	return l, created, err
}

func (s *LoyaltyStore) AddReservations(ctx context.Context, username string, delta int) (domain.Loyalty, error) {
	n, err := addReservations.Run(ctx, s.c, []string{key(username)}, delta).Int()
	if errors.Is(err, redis.Nil) {
		return domain.Loyalty{}, fmt.Errorf("loyalty %s: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Loyalty{}, err
	}
	return toLoyalty(username, n), nil
}
