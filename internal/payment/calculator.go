package payment

import (
	"github.com/shopspring/decimal"
	"github.com/spicybites/pos/internal/common/domain"
)

// Quote is the input to a transaction computation.
type Quote struct {
	Subtotal      float64
	PromoRate     float64
	PointsBalance int64
	RedeemPoints  bool
}

// Result is the outcome of a transaction computation. Computing a Result has
// no side effects; the same Quote always produces the same Result.
type Result struct {
	PromoDiscount  float64 `json:"promo_discount"`
	RedeemValue    float64 `json:"redeem_value"`
	PointsRedeemed int64   `json:"points_redeemed"`
	FinalTotal     float64 `json:"final_total"`
	PointsEarned   int64   `json:"points_earned"`
}

var (
	pointValue    = decimal.NewFromFloat(domain.PointValue)
	redeemCapRate = decimal.NewFromFloat(domain.RedeemCapRate)
	earnRate      = decimal.NewFromFloat(domain.EarnRate)
)

// Compute applies the promo discount and the loyalty redemption to the
// subtotal. Redemption is capped at 20% of the subtotal, each point is worth
// $0.05 and the points actually consumed are recomputed from the redeemed
// value, truncating toward zero. Points earned are 5% of the final payment,
// truncated. Currency amounts are rounded to two decimals.
func Compute(q Quote) Result {
	subtotal := decimal.NewFromFloat(q.Subtotal)
	rate := decimal.NewFromFloat(q.PromoRate)

	promoDiscount := subtotal.Mul(rate).Round(2)

	var redeemValue decimal.Decimal
	var pointsRedeemed int64
	if q.RedeemPoints && q.PointsBalance > 0 {
		maxRedeemValue := subtotal.Mul(redeemCapRate).Round(2)
		possibleValue := decimal.NewFromInt(q.PointsBalance).Mul(pointValue).Round(2)

		redeemValue = decimal.Min(maxRedeemValue, possibleValue)
		pointsRedeemed = redeemValue.Div(pointValue).IntPart()
	}

	intermediateTotal := subtotal.Sub(promoDiscount).Sub(redeemValue)
	if intermediateTotal.IsNegative() {
		intermediateTotal = decimal.Zero
	}

	pointsEarned := intermediateTotal.Mul(earnRate).IntPart()

	return Result{
		PromoDiscount:  promoDiscount.InexactFloat64(),
		RedeemValue:    redeemValue.InexactFloat64(),
		PointsRedeemed: pointsRedeemed,
		FinalTotal:     intermediateTotal.Round(2).InexactFloat64(),
		PointsEarned:   pointsEarned,
	}
}

// NewBalance is the loyalty ledger update rule: the balance drops by the
// redeemed points, grows by the earned points and never goes below zero.
func NewBalance(currentBalance, pointsRedeemed, pointsEarned int64) int64 {
	newBalance := currentBalance - pointsRedeemed + pointsEarned
	if newBalance < 0 {
		return 0
	}

	return newBalance
}
