package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

// UserHeader carries the caller's username.
const UserHeader = "X-User-Name"

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func callerFrom(r *http.Request) domain.Caller {
	return domain.Caller{Username: strings.TrimSpace(r.Header.Get(UserHeader))}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal JSON response failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps err to a response. Backing-service failures are forwarded
// with their original status, content type and body.
func writeError(w http.ResponseWriter, err error) {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		if ue.Status == 0 {
			log.Error().Err(err).Str("upstream", ue.Service).Msg("upstream unreachable")
			writeProblem(w, http.StatusBadGateway, "Bad Gateway", ue.Service+" service unavailable")
			return
		}
		if ue.ContentType != "" {
			w.Header().Set("Content-Type", ue.ContentType)
		}
		w.WriteHeader(ue.Status)
		if _, werr := w.Write(ue.Body); werr != nil {
			log.Error().Err(werr).Msg("write proxied error body failed")
		}
		return
	}

	switch {
	case errors.Is(err, domain.ErrMissingCaller):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %v: %w", err, domain.ErrInvalidInput)
	}
	return nil
}
