package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// Gateway orchestrates the reservation, payment and loyalty services. It holds
// no per-request state and is safe for concurrent use.
type Gateway struct {
	reservations domain.ReservationAPI
	payments     domain.PaymentAPI
	loyalty      domain.LoyaltyAPI
	compensate   bool
}

type GatewayOption func(*Gateway)

// WithCompensation enables compensating calls after a failed write step:
// the payment is deleted when reservation creation fails, and the loyalty
// count is decremented when payment deletion fails during cancellation.
func WithCompensation(on bool) GatewayOption {
	return func(g *Gateway) { g.compensate = on }
}

func NewGateway(r domain.ReservationAPI, p domain.PaymentAPI, l domain.LoyaltyAPI, opts ...GatewayOption) *Gateway {
	g := &Gateway{reservations: r, payments: p, loyalty: l}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Gateway) ListHotels(ctx context.Context, page, size string) (json.RawMessage, error) {
	return g.reservations.ListHotels(ctx, page, size)
}

func (g *Gateway) GetLoyalty(ctx context.Context, username string) (domain.Loyalty, error) {
	if username == "" {
		return domain.Loyalty{}, domain.ErrMissingCaller
	}
	return g.loyalty.GetLoyalty(ctx, username)
}

func (g *Gateway) GetProfile(ctx context.Context, c domain.Caller) (domain.Profile, error) {
	if !c.Valid() {
		return domain.Profile{}, domain.ErrMissingCaller
	}

	var (
		loyalty domain.Loyalty
		rs      []domain.Reservation
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		l, err := g.loyalty.GetLoyalty(egctx, c.Username)
		loyalty = l
		return err
	})
	eg.Go(func() error {
		out, err := g.reservations.ListReservations(egctx, c)
		rs = out
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Profile{}, err
	}

	views, err := g.attachPayments(ctx, rs)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{Reservations: views, Loyalty: loyalty}, nil
}

func (g *Gateway) ListReservations(ctx context.Context, c domain.Caller) ([]domain.ReservationView, error) {
	if !c.Valid() {
		return nil, domain.ErrMissingCaller
	}
	rs, err := g.reservations.ListReservations(ctx, c)
	if err != nil {
		return nil, err
	}
	return g.attachPayments(ctx, rs)
}

func (g *Gateway) attachPayments(ctx context.Context, rs []domain.Reservation) ([]domain.ReservationView, error) {
	var ps []domain.Payment
	if uids := paymentUIDs(rs); len(uids) > 0 {
		var err error
		if ps, err = g.payments.ListPayments(ctx, uids); err != nil {
			return nil, err
		}
	}
	for i := range rs {
		rs[i] = withFullAddress(rs[i], false)
	}
	return MergeReservationsAndPayments(rs, ps), nil
}

func (g *Gateway) GetReservation(ctx context.Context, c domain.Caller, uid string) (domain.ReservationView, error) {
	if !c.Valid() {
		return domain.ReservationView{}, domain.ErrMissingCaller
	}
	r, err := g.reservations.GetReservation(ctx, c, uid)
	if err != nil {
		return domain.ReservationView{}, err
	}
	v := domain.ReservationView{Reservation: withFullAddress(r, true)}

	p, err := g.payments.GetPayment(ctx, r.PaymentUID)
	switch {
	case err == nil:
		v.Payment = &p
	case r.Status == domain.ReservationCanceled && errors.Is(err, domain.ErrNotFound):
		// payment is removed on cancellation
	default:
		return domain.ReservationView{}, err
	}
	return v, nil
}

func (g *Gateway) CreateReservation(ctx context.Context, c domain.Caller, req domain.CreateReservationRequest) (domain.CreatedReservation, error) {
	if !c.Valid() {
		return domain.CreatedReservation{}, domain.ErrMissingCaller
	}
	if req.HotelUID == "" {
		return domain.CreatedReservation{}, fmt.Errorf("hotelUid is required: %w", domain.ErrInvalidInput)
	}

	hotel, err := g.reservations.GetHotel(ctx, req.HotelUID)
	if err != nil {
		return domain.CreatedReservation{}, err
	}
	loyalty, err := g.loyalty.GetLoyalty(ctx, c.Username)
	if err != nil {
		return domain.CreatedReservation{}, err
	}
	nights, err := NightsBetween(req.StartDate, req.EndDate)
	if err != nil {
		return domain.CreatedReservation{}, err
	}
	price := FinalPrice(nights, hotel.Price, loyalty.Discount)

	payment, err := g.payments.CreatePayment(ctx, domain.NewPayment{Price: price, Status: domain.PaymentPaid})
	if err != nil {
		return domain.CreatedReservation{}, err
	}

	res, err := g.reservations.CreateReservation(ctx, c, domain.NewReservation{
		PaymentUID: payment.PaymentUID,
		Username:   c.Username,
		Status:     domain.ReservationPaid,
		HotelUID:   req.HotelUID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		partialWrite("create_reservation", "reservation", err)
		if g.compensate {
			if derr := g.payments.DeletePayment(ctx, payment.PaymentUID); derr != nil {
				log.Error().Err(derr).Str("payment", payment.PaymentUID).Msg("compensating payment delete failed")
			}
		}
		return domain.CreatedReservation{}, err
	}

	if err := g.loyalty.UpdateReservationCount(ctx, c.Username, domain.StrategyIncrement); err != nil {
		partialWrite("create_reservation", "loyalty", err)
		return domain.CreatedReservation{}, err
	}

	res.HotelUID = hotel.HotelUID
	return domain.CreatedReservation{Reservation: res, Discount: loyalty.Discount, Payment: &payment}, nil
}

func (g *Gateway) CancelReservation(ctx context.Context, c domain.Caller, uid string) error {
	if !c.Valid() {
		return domain.ErrMissingCaller
	}
	r, err := g.reservations.GetReservation(ctx, c, uid)
	if err != nil {
		return err
	}
	if r.Status == domain.ReservationCanceled {
		return fmt.Errorf("reservation %s already canceled: %w", uid, domain.ErrConflict)
	}

	if err := g.reservations.CancelReservation(ctx, c, uid); err != nil {
		return err
	}
	if err := g.payments.DeletePayment(ctx, r.PaymentUID); err != nil {
		partialWrite("cancel_reservation", "payment", err)
		if g.compensate {
			if lerr := g.loyalty.UpdateReservationCount(ctx, c.Username, domain.StrategyDecrement); lerr != nil {
				log.Error().Err(lerr).Str("user", c.Username).Msg("compensating loyalty decrement failed")
			}
		}
		return err
	}
	if err := g.loyalty.UpdateReservationCount(ctx, c.Username, domain.StrategyDecrement); err != nil {
		partialWrite("cancel_reservation", "loyalty", err)
		return err
	}
	return nil
}

// partialWrite records a write step that failed after an earlier write
// succeeded, leaving records behind in other services.
func partialWrite(op, step string, err error) {
	observability.ObservePartialWrite(op, step)
	log.Warn().Err(err).Str("operation", op).Str("step", step).Msg("partial write")
}
