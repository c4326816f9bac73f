package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"hotel_booking/internal/domain"
)

type PaymentClient struct{ *Client }

var _ domain.PaymentAPI = (*PaymentClient)(nil)

func NewPaymentClient(base string, rps int, hc *http.Client) *PaymentClient {
	return &PaymentClient{New("payment", base, rps, hc)}
}

func (c *PaymentClient) CreatePayment(ctx context.Context, p domain.NewPayment) (domain.Payment, error) {
	var out domain.Payment
	err := c.do(ctx, call{method: http.MethodPost, path: "/payments", endpoint: "POST /payments", body: p}, &out)
	return out, err
}

func (c *PaymentClient) GetPayment(ctx context.Context, uid string) (domain.Payment, error) {
	var out domain.Payment
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/payments/" + url.PathEscape(uid),
		endpoint: "GET /payments/{uid}",
	}, &out)
	return out, err
}

// ListPayments sends uids as a JSON array in the uids query parameter.
func (c *PaymentClient) ListPayments(ctx context.Context, uids []string) ([]domain.Payment, error) {
	b, err := json.Marshal(uids)
	if err != nil {
		return nil, fmt.Errorf("payment: marshal uids: %w", err)
	}
	var out []domain.Payment
	err = c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/payments",
		endpoint: "GET /payments",
		query:    url.Values{"uids": {string(b)}},
	}, &out)
	return out, err
}

func (c *PaymentClient) DeletePayment(ctx context.Context, uid string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/payments/" + url.PathEscape(uid),
		endpoint: "DELETE /payments/{uid}",
	}, nil)
}
