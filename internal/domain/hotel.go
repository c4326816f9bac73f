package domain

import "strings"

type Hotel struct {
	HotelUID string `json:"hotelUid" db:"hotel_uid"`
	Name     string `json:"name" db:"name"`
	Country  string `json:"country" db:"country"`
	City     string `json:"city" db:"city"`
	Address  string `json:"address,omitempty" db:"address"`
	Stars    *int   `json:"stars,omitempty" db:"stars"`
	Price    int    `json:"price" db:"price"` // per night

	FullAddress string `json:"fullAddress,omitempty" db:"-"`
}

type HotelsPage struct {
	Page          int     `json:"page"`
	PageSize      int     `json:"pageSize"`
	TotalElements int     `json:"totalElements"`
	Items         []Hotel `json:"items"`
}

// FullAddress formats a hotel address as "{country}, {city}, {address}".
func FullAddress(country, city, address string) string {
	return strings.Join([]string{country, city, address}, ", ")
}
