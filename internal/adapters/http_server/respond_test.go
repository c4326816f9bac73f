package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel_booking/internal/domain"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		ctype  string
		body   string
	}{
		{
			name:   "upstream response forwarded",
			err:    fmt.Errorf("get hotel: %w", &domain.UpstreamError{Service: "reservation", Status: 404, ContentType: "text/plain", Body: []byte("no such hotel")}),
			status: http.StatusNotFound,
			ctype:  "text/plain",
			body:   "no such hotel",
		},
		{
			name:   "upstream unreachable",
			err:    &domain.UpstreamError{Service: "payment", Err: errors.New("connection refused")},
			status: http.StatusBadGateway,
			ctype:  "application/problem+json",
		},
		{name: "missing caller", err: domain.ErrMissingCaller, status: http.StatusBadRequest, ctype: "application/problem+json"},
		{name: "invalid input", err: fmt.Errorf("dates: %w", domain.ErrInvalidInput), status: http.StatusBadRequest, ctype: "application/problem+json"},
		{name: "conflict", err: domain.ErrConflict, status: http.StatusConflict, ctype: "application/problem+json"},
		{name: "not found", err: domain.ErrNotFound, status: http.StatusNotFound, ctype: "application/problem+json"},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError, ctype: "application/problem+json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.ctype, rec.Header().Get("Content-Type"))
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestParseUIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseUIDs(`["a","b"]`))
	assert.Equal(t, []string{"a", "b"}, parseUIDs("a, b,"))
	assert.Nil(t, parseUIDs(""))
	assert.Nil(t, parseUIDs("[broken"))
}

func TestCallerFrom(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(UserHeader, "  Test Max ")
	assert.Equal(t, domain.Caller{Username: "Test Max"}, callerFrom(r))
}
