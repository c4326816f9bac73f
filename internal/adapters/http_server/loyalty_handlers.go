package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type LoyaltyHandlers struct{ S *app.LoyaltyService }

func (s *Server) MountLoyalty(h *LoyaltyHandlers) {
	s.mux.Route(APIPrefix, func(r chi.Router) {
		r.Post("/loyalty", h.enroll)
		r.Put("/loyalty/reservation_count", h.updateReservationCount)
		r.Get("/loyalty/{username}", h.getLoyalty)
	})
}

func (h *LoyaltyHandlers) getLoyalty(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.GetLoyalty(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LoyaltyHandlers) enroll(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	out, created, err := h.S.Enroll(r.Context(), body.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, out)
}

func (h *LoyaltyHandlers) updateReservationCount(w http.ResponseWriter, r *http.Request) {
	var u domain.LoyaltyUpdate
	if err := decodeBody(r, &u); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.S.UpdateReservationCount(r.Context(), u)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
