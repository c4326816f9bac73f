package upstream

import (
	"context"
	"net/http"
	"net/url"

	"hotel_booking/internal/domain"
)

type LoyaltyClient struct{ *Client }

var _ domain.LoyaltyAPI = (*LoyaltyClient)(nil)

func NewLoyaltyClient(base string, rps int, hc *http.Client) *LoyaltyClient {
	return &LoyaltyClient{New("loyalty", base, rps, hc)}
}

func (c *LoyaltyClient) GetLoyalty(ctx context.Context, username string) (domain.Loyalty, error) {
	var out domain.Loyalty
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/loyalty/" + url.PathEscape(username),
		endpoint: "GET /loyalty/{username}",
	}, &out)
	return out, err
}

func (c *LoyaltyClient) UpdateReservationCount(ctx context.Context, username, strategy string) error {
	return c.do(ctx, call{
		method:   http.MethodPut,
		path:     "/loyalty/reservation_count",
		endpoint: "PUT /loyalty/reservation_count",
		body:     domain.LoyaltyUpdate{Strategy: strategy, Username: username},
	}, nil)
}
