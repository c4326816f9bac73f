package app

import (
	"context"
	"fmt"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

type LoyaltyService struct {
	store domain.LoyaltyStore
}

func NewLoyaltyService(s domain.LoyaltyStore) *LoyaltyService {
	return &LoyaltyService{store: s}
}

func (s *LoyaltyService) GetLoyalty(ctx context.Context, username string) (domain.Loyalty, error) {
	if username == "" {
		return domain.Loyalty{}, domain.ErrMissingCaller
	}
	return s.store.Get(ctx, username)
}

// Enroll creates a BRONZE record for username. created is false when the
// user was already enrolled.
func (s *LoyaltyService) Enroll(ctx context.Context, username string) (l domain.Loyalty, created bool, err error) {
	if username == "" {
		return domain.Loyalty{}, false, fmt.Errorf("username is required: %w", domain.ErrInvalidInput)
	}
	return s.store.Enroll(ctx, username)
}

func (s *LoyaltyService) UpdateReservationCount(ctx context.Context, u domain.LoyaltyUpdate) (domain.Loyalty, error) {
	if u.Username == "" {
		return domain.Loyalty{}, fmt.Errorf("username is required: %w", domain.ErrInvalidInput)
	}
	var delta int
	switch u.Strategy {
	case domain.StrategyIncrement:
		delta = 1
	case domain.StrategyDecrement:
		delta = -1
	default:
		return domain.Loyalty{}, fmt.Errorf("strategy %q: %w", u.Strategy, domain.ErrInvalidInput)
	}
	l, err := s.store.AddReservations(ctx, u.Username, delta)
	if err != nil {
		return domain.Loyalty{}, err
	}
	observability.ObserveLoyaltyUpdate(u.Strategy, string(l.Status))
	return l, nil
}
