package domain

type LoyaltyStatus string

const (
	LoyaltyBronze LoyaltyStatus = "BRONZE"
	LoyaltySilver LoyaltyStatus = "SILVER"
	LoyaltyGold   LoyaltyStatus = "GOLD"
)

// Strategy names accepted by the loyalty reservation_count update.
const (
	StrategyIncrement = "INCREMENT"
	StrategyDecrement = "DECREMENT"
)

type Loyalty struct {
	Username         string        `json:"username"`
	ReservationCount int           `json:"reservationCount"`
	Status           LoyaltyStatus `json:"status"`
	Discount         int           `json:"discount"`
}

type LoyaltyUpdate struct {
	Strategy string `json:"strategy"`
	Username string `json:"username"`
}

// Tier returns the status and discount earned by a reservation count.
func Tier(count int) (LoyaltyStatus, int) {
	switch {
	case count >= 20:
		return LoyaltyGold, 10
	case count >= 10:
		return LoyaltySilver, 7
	default:
		return LoyaltyBronze, 5
	}
}
