package app

import (
	"fmt"
	"math"
	"time"

	"hotel_booking/internal/domain"
)

// ParseDate accepts YYYY-MM-DD and RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, domain.ErrInvalidInput)
	}
	return t, nil
}

// NightsBetween returns the number of whole days from start to end, floored
// at zero when end is not after start.
func NightsBetween(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	days := math.Floor(e.Sub(s).Hours() / 24)
	if days < 0 {
		return 0, nil
	}
	return int(days), nil
}

// FinalPrice applies a percentage discount to nights*pricePerNight.
func FinalPrice(nights, pricePerNight, discount int) float64 {
	raw := float64(nights) * float64(pricePerNight)
	final := raw - raw*float64(discount)/100.0
	if final < 0 {
		return 0
	}
	return final
}
