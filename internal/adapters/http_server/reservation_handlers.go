package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type ReservationHandlers struct{ S *app.ReservationService }

func (s *Server) MountReservation(h *ReservationHandlers) {
	s.mux.Route(APIPrefix, func(r chi.Router) {
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{uid}", h.getHotel)
		r.Get("/reservations", h.listReservations)
		r.Post("/reservations", h.createReservation)
		r.Get("/reservations/{uid}", h.getReservation)
		r.Delete("/reservations/{uid}", h.cancelReservation)
	})
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, domain.ErrInvalidInput)
	}
	return n, nil
}

func (h *ReservationHandlers) listHotels(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		writeError(w, err)
		return
	}
	size, err := intParam(r, "size", app.DefaultPageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := h.S.ListHotels(r.Context(), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReservationHandlers) getHotel(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.GetHotel(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReservationHandlers) listReservations(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.ListReservations(r.Context(), callerFrom(r).Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReservationHandlers) getReservation(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.GetReservation(r.Context(), chi.URLParam(r, "uid"), callerFrom(r).Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReservationHandlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var nr domain.NewReservation
	if err := decodeBody(r, &nr); err != nil {
		writeError(w, err)
		return
	}
	if nr.Username == "" {
		nr.Username = callerFrom(r).Username
	}
	out, err := h.S.CreateReservation(r.Context(), nr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *ReservationHandlers) cancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.S.CancelReservation(r.Context(), chi.URLParam(r, "uid"), callerFrom(r).Username); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
