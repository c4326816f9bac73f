package domain

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "PAID"
	PaymentCanceled PaymentStatus = "CANCELED"
)

type Payment struct {
	PaymentUID string        `json:"paymentUid" db:"payment_uid"`
	Status     PaymentStatus `json:"status" db:"status"`
	Price      float64       `json:"price" db:"price"`
}

type NewPayment struct {
	Price  float64       `json:"price"`
	Status PaymentStatus `json:"status"`
}
