package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hotel_booking/internal/domain"
)

type hotelRow struct {
	HotelUID string        `db:"hotel_uid"`
	Name     string        `db:"name"`
	Country  string        `db:"country"`
	City     string        `db:"city"`
	Address  string        `db:"address"`
	Stars    sql.NullInt64 `db:"stars"`
	Price    int           `db:"price"`
}

func (h hotelRow) toDomain() domain.Hotel {
	out := domain.Hotel{
		HotelUID: h.HotelUID,
		Name:     h.Name,
		Country:  h.Country,
		City:     h.City,
		Address:  h.Address,
		Price:    h.Price,
	}
	if h.Stars.Valid {
		s := int(h.Stars.Int64)
		out.Stars = &s
	}
	return out
}

type reservationRow struct {
	ReservationUID string `db:"reservation_uid"`
	Username       string `db:"username"`
	PaymentUID     string `db:"payment_uid"`
	Status         string `db:"status"`
	StartDate      string `db:"start_date"`
	EndDate        string `db:"end_date"`
	hotelRow
}

func (r reservationRow) toDomain() domain.Reservation {
	h := r.hotelRow.toDomain()
	return domain.Reservation{
		ReservationUID: r.ReservationUID,
		Username:       r.Username,
		PaymentUID:     r.PaymentUID,
		HotelUID:       h.HotelUID,
		Status:         domain.ReservationStatus(r.Status),
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Hotel:          &h,
	}
}

// ReservationRepo stores hotels and reservations.
type ReservationRepo struct{ db *sqlx.DB }

func NewReservationRepo(db *sqlx.DB) *ReservationRepo { return &ReservationRepo{db: db} }

func (r *ReservationRepo) ListHotels(ctx context.Context, page, size int) (domain.HotelsPage, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, countHotelsSQL); err != nil {
		return domain.HotelsPage{}, fmt.Errorf("count hotels: %w", err)
	}
	var rows []hotelRow
	if err := r.db.SelectContext(ctx, &rows, listHotelsSQL, size, (page-1)*size); err != nil {
		return domain.HotelsPage{}, fmt.Errorf("list hotels: %w", err)
	}
	out := domain.HotelsPage{Page: page, PageSize: size, TotalElements: total, Items: make([]domain.Hotel, 0, len(rows))}
	for _, h := range rows {
		out.Items = append(out.Items, h.toDomain())
	}
	return out, nil
}

func (r *ReservationRepo) GetHotel(ctx context.Context, uid string) (domain.Hotel, error) {
	var row hotelRow
	if err := r.db.GetContext(ctx, &row, getHotelSQL, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, fmt.Errorf("hotel %s: %w", uid, domain.ErrNotFound)
		}
		return domain.Hotel{}, err
	}
	return row.toDomain(), nil
}

func (r *ReservationRepo) ListReservations(ctx context.Context, username string) ([]domain.Reservation, error) {
	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows, listReservationsSQL, username); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	out := make([]domain.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ReservationRepo) GetReservation(ctx context.Context, uid, username string) (domain.Reservation, error) {
	var row reservationRow
	if err := r.db.GetContext(ctx, &row, getReservationSQL, uid, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reservation{}, fmt.Errorf("reservation %s: %w", uid, domain.ErrNotFound)
		}
		return domain.Reservation{}, err
	}
	return row.toDomain(), nil
}

func (r *ReservationRepo) InsertReservation(ctx context.Context, res domain.Reservation) error {
	out, err := r.db.ExecContext(ctx, insertReservationSQL,
		res.ReservationUID,
		res.Username,
		res.PaymentUID,
		string(res.Status),
		res.StartDate,
		res.EndDate,
		res.HotelUID,
	)
	if err != nil {
		return err
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("hotel %s: %w", res.HotelUID, domain.ErrNotFound)
	}
	return nil
}

func (r *ReservationRepo) UpdateReservationStatus(ctx context.Context, uid, username string, s domain.ReservationStatus) error {
	_, err := r.db.ExecContext(ctx, updateReservationStatusSQL, string(s), uid, username)
	return err
}
