package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hotel_booking/internal/domain"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) InsertPayment(ctx context.Context, p domain.Payment) error {
	_, err := r.db.NamedExecContext(ctx, insertPaymentSQL, p)
	return err
}

func (r *PaymentRepo) GetPayment(ctx context.Context, uid string) (domain.Payment, error) {
	var p domain.Payment
	if err := r.db.GetContext(ctx, &p, getPaymentSQL, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, fmt.Errorf("payment %s: %w", uid, domain.ErrNotFound)
		}
		return domain.Payment{}, err
	}
	return p, nil
}

func (r *PaymentRepo) ListPayments(ctx context.Context, uids []string) ([]domain.Payment, error) {
	out := []domain.Payment{}
	if len(uids) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(listPaymentsSQL, uids)
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

func (r *PaymentRepo) DeletePayment(ctx context.Context, uid string) error {
	res, err := r.db.ExecContext(ctx, deletePaymentSQL, uid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("payment %s: %w", uid, domain.ErrNotFound)
	}
	return nil
}
