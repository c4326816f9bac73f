package domain

// DateLayout is the wire format of reservation start and end dates.
const DateLayout = "2006-01-02"

type ReservationStatus string

const (
	ReservationPaid     ReservationStatus = "PAID"
	ReservationCanceled ReservationStatus = "CANCELED"
)

func (s ReservationStatus) Valid() bool {
	return s == ReservationPaid || s == ReservationCanceled
}

type Reservation struct {
	ReservationUID string            `json:"reservationUid"`
	Username       string            `json:"username"`
	PaymentUID     string            `json:"paymentUid"`
	HotelUID       string            `json:"hotelUid"`
	Status         ReservationStatus `json:"status"`
	StartDate      string            `json:"startDate"`
	EndDate        string            `json:"endDate"`
	Hotel          *Hotel            `json:"hotel,omitempty"`
}

// ReservationView is a reservation as returned by the gateway: the hotel
// carries its full address and the payment is attached (nil when missing).
type ReservationView struct {
	Reservation
	Payment *Payment `json:"payment"`
}

type CreateReservationRequest struct {
	HotelUID  string `json:"hotelUid"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// NewReservation is the body the gateway posts to the reservation service.
type NewReservation struct {
	PaymentUID string            `json:"paymentUid"`
	Username   string            `json:"username"`
	Status     ReservationStatus `json:"status"`
	HotelUID   string            `json:"hotelUid"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
}

type CreatedReservation struct {
	Reservation
	Discount int      `json:"discount"`
	Payment  *Payment `json:"payment"`
}

type Profile struct {
	Reservations []ReservationView `json:"reservations"`
	Loyalty      Loyalty           `json:"loyalty"`
}

// Caller identifies the user on whose behalf a request runs.
type Caller struct {
	Username string
}

func (c Caller) Valid() bool { return c.Username != "" }
