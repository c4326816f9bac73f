package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hotel_booking/internal/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ReservationService backs the reservation service: hotels and
// user-scoped reservations.
type ReservationService struct {
	hotels domain.HotelStore
	store  domain.ReservationStore
}

func NewReservationService(h domain.HotelStore, s domain.ReservationStore) *ReservationService {
	return &ReservationService{hotels: h, store: s}
}

func (s *ReservationService) ListHotels(ctx context.Context, page, size int) (domain.HotelsPage, error) {
	if page < 1 {
		return domain.HotelsPage{}, fmt.Errorf("page must be >= 1: %w", domain.ErrInvalidInput)
	}
	if size < 1 || size > MaxPageSize {
		return domain.HotelsPage{}, fmt.Errorf("size must be between 1 and %d: %w", MaxPageSize, domain.ErrInvalidInput)
	}
	return s.hotels.ListHotels(ctx, page, size)
}

func (s *ReservationService) GetHotel(ctx context.Context, uid string) (domain.Hotel, error) {
	if _, err := uuid.Parse(uid); err != nil {
		return domain.Hotel{}, fmt.Errorf("hotel %q: %w", uid, domain.ErrNotFound)
	}
	return s.hotels.GetHotel(ctx, uid)
}

func (s *ReservationService) ListReservations(ctx context.Context, username string) ([]domain.Reservation, error) {
	if username == "" {
		return nil, domain.ErrMissingCaller
	}
	return s.store.ListReservations(ctx, username)
}

func (s *ReservationService) GetReservation(ctx context.Context, uid, username string) (domain.Reservation, error) {
	if username == "" {
		return domain.Reservation{}, domain.ErrMissingCaller
	}
	if _, err := uuid.Parse(uid); err != nil {
		return domain.Reservation{}, fmt.Errorf("reservation %q: %w", uid, domain.ErrNotFound)
	}
	return s.store.GetReservation(ctx, uid, username)
}

func (s *ReservationService) CreateReservation(ctx context.Context, nr domain.NewReservation) (domain.Reservation, error) {
	if nr.Username == "" {
		return domain.Reservation{}, domain.ErrMissingCaller
	}
	if nr.Status == "" {
		nr.Status = domain.ReservationPaid
	}
	if !nr.Status.Valid() {
		return domain.Reservation{}, fmt.Errorf("status %q: %w", nr.Status, domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(nr.PaymentUID); err != nil {
		return domain.Reservation{}, fmt.Errorf("paymentUid %q: %w", nr.PaymentUID, domain.ErrInvalidInput)
	}
	start, err := ParseDate(nr.StartDate)
	if err != nil {
		return domain.Reservation{}, err
	}
	end, err := ParseDate(nr.EndDate)
	if err != nil {
		return domain.Reservation{}, err
	}
	hotel, err := s.GetHotel(ctx, nr.HotelUID)
	if err != nil {
		return domain.Reservation{}, err
	}

	r := domain.Reservation{
		ReservationUID: uuid.NewString(),
		Username:       nr.Username,
		PaymentUID:     nr.PaymentUID,
		HotelUID:       hotel.HotelUID,
		Status:         nr.Status,
		StartDate:      start.Format(domain.DateLayout),
		EndDate:        end.Format(domain.DateLayout),
	}
	if err := s.store.InsertReservation(ctx, r); err != nil {
		return domain.Reservation{}, fmt.Errorf("insert reservation: %w", err)
	}
	r.Hotel = &hotel
	return r, nil
}

// CancelReservation marks the reservation CANCELED. Canceling twice is a no-op.
func (s *ReservationService) CancelReservation(ctx context.Context, uid, username string) error {
	r, err := s.GetReservation(ctx, uid, username)
	if err != nil {
		return err
	}
	if r.Status == domain.ReservationCanceled {
		return nil
	}
	return s.store.UpdateReservationStatus(ctx, uid, username, domain.ReservationCanceled)
}
