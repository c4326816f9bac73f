package domain

import (
	"context"
	"encoding/json"
)

// Backing services as seen by the gateway.

type ReservationAPI interface {
	ListHotels(ctx context.Context, page, size string) (json.RawMessage, error)
	GetHotel(ctx context.Context, uid string) (Hotel, error)
	ListReservations(ctx context.Context, c Caller) ([]Reservation, error)
	GetReservation(ctx context.Context, c Caller, uid string) (Reservation, error)
	CreateReservation(ctx context.Context, c Caller, r NewReservation) (Reservation, error)
	CancelReservation(ctx context.Context, c Caller, uid string) error
}

type PaymentAPI interface {
	CreatePayment(ctx context.Context, p NewPayment) (Payment, error)
	GetPayment(ctx context.Context, uid string) (Payment, error)
	ListPayments(ctx context.Context, uids []string) ([]Payment, error)
	DeletePayment(ctx context.Context, uid string) error
}

type LoyaltyAPI interface {
	GetLoyalty(ctx context.Context, username string) (Loyalty, error)
	UpdateReservationCount(ctx context.Context, username, strategy string) error
}

// Storage used by the backing services.

type HotelStore interface {
	ListHotels(ctx context.Context, page, size int) (HotelsPage, error)
	GetHotel(ctx context.Context, uid string) (Hotel, error)
}

type ReservationStore interface {
	ListReservations(ctx context.Context, username string) ([]Reservation, error)
	GetReservation(ctx context.Context, uid, username string) (Reservation, error)
	InsertReservation(ctx context.Context, r Reservation) error
	UpdateReservationStatus(ctx context.Context, uid, username string, s ReservationStatus) error
}

type PaymentStore interface {
	InsertPayment(ctx context.Context, p Payment) error
	GetPayment(ctx context.Context, uid string) (Payment, error)
	ListPayments(ctx context.Context, uids []string) ([]Payment, error)
	DeletePayment(ctx context.Context, uid string) error
}

type LoyaltyStore interface {
	Get(ctx context.Context, username string) (Loyalty, error)
	Enroll(ctx context.Context, username string) (Loyalty, bool, error)
	AddReservations(ctx context.Context, username string, delta int) (Loyalty, error)
}
