package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type GatewayHandlers struct{ G *app.Gateway }

func (s *Server) MountGateway(h *GatewayHandlers) {
	s.mux.Route(APIPrefix, func(r chi.Router) {
		r.Get("/hotels", h.listHotels)
		r.Get("/me", h.me)
		r.Get("/reservations", h.listReservations)
		r.Post("/reservations", h.createReservation)
		r.Get("/reservations/{uid}", h.getReservation)
		r.Delete("/reservations/{uid}", h.cancelReservation)
		r.Get("/loyalty", h.myLoyalty)
		r.Get("/loyalty/{username}", h.getLoyalty)
	})
}

func (h *GatewayHandlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	body, err := h.G.ListHotels(r.Context(), q.Get("page"), q.Get("size"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listHotels body")
	}
}

func (h *GatewayHandlers) me(w http.ResponseWriter, r *http.Request) {
	out, err := h.G.GetProfile(r.Context(), callerFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GatewayHandlers) listReservations(w http.ResponseWriter, r *http.Request) {
	out, err := h.G.ListReservations(r.Context(), callerFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GatewayHandlers) getReservation(w http.ResponseWriter, r *http.Request) {
	out, err := h.G.GetReservation(r.Context(), callerFrom(r), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GatewayHandlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.G.CreateReservation(r.Context(), callerFrom(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *GatewayHandlers) cancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.G.CancelReservation(r.Context(), callerFrom(r), chi.URLParam(r, "uid")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GatewayHandlers) myLoyalty(w http.ResponseWriter, r *http.Request) {
	out, err := h.G.GetLoyalty(r.Context(), callerFrom(r).Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GatewayHandlers) getLoyalty(w http.ResponseWriter, r *http.Request) {
	out, err := h.G.GetLoyalty(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
