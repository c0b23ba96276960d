package domain

const (
	SalesPerPage = 15

	DefaultMembership = "regular"

	// Loyalty scheme rates. Each point is worth $0.05 on redemption,
	// a sale may redeem at most 20% of its subtotal, and 5% of the
	// final payment comes back as points.
	PointValue    = 0.05
	RedeemCapRate = 0.20
	EarnRate      = 0.05
)
