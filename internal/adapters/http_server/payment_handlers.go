package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type PaymentHandlers struct{ S *app.PaymentService }

func (s *Server) MountPayment(h *PaymentHandlers) {
	s.mux.Route(APIPrefix, func(r chi.Router) {
		r.Post("/payments", h.createPayment)
		r.Get("/payments", h.listPayments)
		r.Get("/payments/{uid}", h.getPayment)
		r.Delete("/payments/{uid}", h.deletePayment)
	})
}

// parseUIDs reads the uids query parameter: a JSON array, or a
// comma-separated list.
func parseUIDs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out
		}
		return nil
	}
	for _, p := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (h *PaymentHandlers) createPayment(w http.ResponseWriter, r *http.Request) {
	var np domain.NewPayment
	if err := decodeBody(r, &np); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.S.CreatePayment(r.Context(), np)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *PaymentHandlers) listPayments(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.ListPayments(r.Context(), parseUIDs(r.URL.Query().Get("uids")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PaymentHandlers) getPayment(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.GetPayment(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PaymentHandlers) deletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.S.DeletePayment(r.Context(), chi.URLParam(r, "uid")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
