// Package upstream holds the gateway's JSON clients for the reservation,
// payment and loyalty services.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

const (
	userHeader   = "X-User-Name"
	maxErrorBody = 1 << 20
)

// Client is a JSON client for one backing service. Calls are never retried.
type Client struct {
	service string
	base    string
	hc      *http.Client
	rl      *rate.Limiter
}

// New returns a client for the service rooted at base (e.g.
// http://localhost:8070/api/v1). rps <= 0 disables client-side throttling.
// A nil hc uses a client without timeout.
func New(service, base string, rps int, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	c := &Client{service: service, base: strings.TrimRight(base, "/"), hc: hc}
	if rps > 0 {
		c.rl = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return c
}

type call struct {
	method   string
	path     string
	endpoint string // metric label, e.g. "GET /reservations/{uid}"
	query    url.Values
	caller   string
	body     any
}

// do performs one request and decodes a 2xx body into out (when non-nil).
// Non-2xx responses come back as *domain.UpstreamError carrying the
// original status, content type and body.
func (c *Client) do(ctx context.Context, k call, out any) error {
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return &domain.UpstreamError{Service: c.service, Err: err}
		}
	}

	u := c.base + k.path
	if len(k.query) > 0 {
		u += "?" + k.query.Encode()
	}

	var body io.Reader
	if k.body != nil {
		b, err := json.Marshal(k.body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", c.service, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, k.method, u, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-gateway/1.0")
	if k.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if k.caller != "" {
		req.Header.Set(userHeader, k.caller)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.service, k.endpoint, 0, time.Since(start))
		log.Debug().Err(err).Str("upstream", c.service).Str("endpoint", k.endpoint).Msg("upstream call failed")
		return &domain.UpstreamError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.service, k.endpoint, resp.StatusCode, time.Since(start))
	log.Debug().
		Str("upstream", c.service).
		Str("endpoint", k.endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("upstream call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.UpstreamError{
			Service:     c.service,
			Status:      resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        b,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Service: c.service, Err: fmt.Errorf("decode %s: %w", k.endpoint, err)}
	}
	return nil
}
