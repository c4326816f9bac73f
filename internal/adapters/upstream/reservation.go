package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"hotel_booking/internal/domain"
)

type ReservationClient struct{ *Client }

var _ domain.ReservationAPI = (*ReservationClient)(nil)

func NewReservationClient(base string, rps int, hc *http.Client) *ReservationClient {
	return &ReservationClient{New("reservation", base, rps, hc)}
}

// ListHotels forwards page and size as given and returns the body untouched.
func (c *ReservationClient) ListHotels(ctx context.Context, page, size string) (json.RawMessage, error) {
	q := url.Values{}
	if page != "" {
		q.Set("page", page)
	}
	if size != "" {
		q.Set("size", size)
	}
	var out json.RawMessage
	err := c.do(ctx, call{method: http.MethodGet, path: "/hotels", endpoint: "GET /hotels", query: q}, &out)
	return out, err
}

func (c *ReservationClient) GetHotel(ctx context.Context, uid string) (domain.Hotel, error) {
	var out domain.Hotel
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/hotels/" + url.PathEscape(uid),
		endpoint: "GET /hotels/{uid}",
	}, &out)
	return out, err
}

func (c *ReservationClient) ListReservations(ctx context.Context, cl domain.Caller) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/reservations",
		endpoint: "GET /reservations",
		caller:   cl.Username,
	}, &out)
	return out, err
}

func (c *ReservationClient) GetReservation(ctx context.Context, cl domain.Caller, uid string) (domain.Reservation, error) {
	var out domain.Reservation
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/reservations/" + url.PathEscape(uid),
		endpoint: "GET /reservations/{uid}",
		caller:   cl.Username,
	}, &out)
	return out, err
}

func (c *ReservationClient) CreateReservation(ctx context.Context, cl domain.Caller, r domain.NewReservation) (domain.Reservation, error) {
	var out domain.Reservation
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/reservations",
		endpoint: "POST /reservations",
		caller:   cl.Username,
		body:     r,
	}, &out)
	return out, err
}

func (c *ReservationClient) CancelReservation(ctx context.Context, cl domain.Caller, uid string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/reservations/" + url.PathEscape(uid),
		endpoint: "DELETE /reservations/{uid}",
		caller:   cl.Username,
	}, nil)
}
