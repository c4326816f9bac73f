package app

import "hotel_booking/internal/domain"

// MergeReservationsAndPayments attaches to every reservation the first
// payment with a matching UID, or nil. Output order and length follow rs.
func MergeReservationsAndPayments(rs []domain.Reservation, ps []domain.Payment) []domain.ReservationView {
	out := make([]domain.ReservationView, 0, len(rs))
	for _, r := range rs {
		v := domain.ReservationView{Reservation: r}
		for i := range ps {
			if ps[i].PaymentUID == r.PaymentUID {
				p := ps[i]
				v.Payment = &p
				break
			}
		}
		out = append(out, v)
	}
	return out
}

// withFullAddress returns r with a copy of its hotel carrying fullAddress.
// The raw address is cleared when dropAddress is set.
func withFullAddress(r domain.Reservation, dropAddress bool) domain.Reservation {
	if r.Hotel == nil {
		return r
	}
	h := *r.Hotel
	h.FullAddress = domain.FullAddress(h.Country, h.City, h.Address)
	if dropAddress {
		h.Address = ""
	}
	r.Hotel = &h
	return r
}

func paymentUIDs(rs []domain.Reservation) []string {
	seen := make(map[string]struct{}, len(rs))
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.PaymentUID == "" {
			continue
		}
		if _, ok := seen[r.PaymentUID]; ok {
			continue
		}
		seen[r.PaymentUID] = struct{}{}
		out = append(out, r.PaymentUID)
	}
	return out
}
