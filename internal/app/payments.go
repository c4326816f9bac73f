package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hotel_booking/internal/domain"
)

type PaymentService struct {
	store domain.PaymentStore
}

func NewPaymentService(s domain.PaymentStore) *PaymentService {
	return &PaymentService{store: s}
}

func (s *PaymentService) CreatePayment(ctx context.Context, np domain.NewPayment) (domain.Payment, error) {
	if np.Price < 0 {
		return domain.Payment{}, fmt.Errorf("price must be non-negative: %w", domain.ErrInvalidInput)
	}
	if np.Status == "" {
		np.Status = domain.PaymentPaid
	}
	if np.Status != domain.PaymentPaid && np.Status != domain.PaymentCanceled {
		return domain.Payment{}, fmt.Errorf("status %q: %w", np.Status, domain.ErrInvalidInput)
	}
	p := domain.Payment{PaymentUID: uuid.NewString(), Status: np.Status, Price: np.Price}
	if err := s.store.InsertPayment(ctx, p); err != nil {
		return domain.Payment{}, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, uid string) (domain.Payment, error) {
	if _, err := uuid.Parse(uid); err != nil {
		return domain.Payment{}, fmt.Errorf("payment %q: %w", uid, domain.ErrNotFound)
	}
	return s.store.GetPayment(ctx, uid)
}

// ListPayments returns the payments found among uids; malformed and unknown
// UIDs are skipped.
func (s *PaymentService) ListPayments(ctx context.Context, uids []string) ([]domain.Payment, error) {
	valid := make([]string, 0, len(uids))
	for _, u := range uids {
		if _, err := uuid.Parse(u); err == nil {
			valid = append(valid, u)
		}
	}
	if len(valid) == 0 {
		return []domain.Payment{}, nil
	}
	return s.store.ListPayments(ctx, valid)
}

func (s *PaymentService) DeletePayment(ctx context.Context, uid string) error {
	if _, err := uuid.Parse(uid); err != nil {
		return fmt.Errorf("payment %q: %w", uid, domain.ErrNotFound)
	}
	return s.store.DeletePayment(ctx, uid)
}
