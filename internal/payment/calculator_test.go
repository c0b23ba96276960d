package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_PromoDiscount(t *testing.T) {
	result := Compute(Quote{Subtotal: 100, PromoRate: 0.10})

	assert.Equal(t, 10.00, result.PromoDiscount)
	assert.Equal(t, 0.00, result.RedeemValue)
	assert.Equal(t, int64(0), result.PointsRedeemed)
	assert.Equal(t, 90.00, result.FinalTotal)
	assert.Equal(t, int64(4), result.PointsEarned)
}

func TestCompute_RedemptionCappedAtTwentyPercent(t *testing.T) {
	// 500 points are worth $25.00 but the cap is 20% of $50.00 = $10.00,
	// so only 200 points are consumed.
	result := Compute(Quote{Subtotal: 50, PointsBalance: 500, RedeemPoints: true})

	assert.Equal(t, 0.00, result.PromoDiscount)
	assert.Equal(t, 10.00, result.RedeemValue)
	assert.Equal(t, int64(200), result.PointsRedeemed)
	assert.Equal(t, 40.00, result.FinalTotal)
	assert.Equal(t, int64(2), result.PointsEarned)
}

func TestCompute_RedemptionBelowCap(t *testing.T) {
	result := Compute(Quote{Subtotal: 100, PointsBalance: 30, RedeemPoints: true})

	assert.Equal(t, 1.50, result.RedeemValue)
	assert.Equal(t, int64(30), result.PointsRedeemed)
	assert.Equal(t, 98.50, result.FinalTotal)
	assert.Equal(t, int64(4), result.PointsEarned)
}

func TestCompute_NoRedemptionWithoutRequest(t *testing.T) {
	result := Compute(Quote{Subtotal: 50, PointsBalance: 500})

	assert.Equal(t, 0.00, result.RedeemValue)
	assert.Equal(t, int64(0), result.PointsRedeemed)
	assert.Equal(t, 50.00, result.FinalTotal)
}

func TestCompute_NoRedemptionWithZeroBalance(t *testing.T) {
	result := Compute(Quote{Subtotal: 50, PointsBalance: 0, RedeemPoints: true})

	assert.Equal(t, 0.00, result.RedeemValue)
	assert.Equal(t, int64(0), result.PointsRedeemed)
}

func TestCompute_ZeroSubtotal(t *testing.T) {
	result := Compute(Quote{Subtotal: 0, PromoRate: 0.20, PointsBalance: 100, RedeemPoints: true})

	assert.Equal(t, 0.00, result.PromoDiscount)
	assert.Equal(t, 0.00, result.RedeemValue)
	assert.Equal(t, int64(0), result.PointsRedeemed)
	assert.Equal(t, 0.00, result.FinalTotal)
	assert.Equal(t, int64(0), result.PointsEarned)
}

func TestCompute_TotalNeverNegative(t *testing.T) {
	result := Compute(Quote{Subtotal: 1, PromoRate: 1.0, PointsBalance: 1000, RedeemPoints: true})

	assert.Equal(t, 0.00, result.FinalTotal)
	assert.Equal(t, int64(0), result.PointsEarned)
}

func TestCompute_FinalTotalNeverExceedsSubtotal(t *testing.T) {
	quotes := []Quote{
		{Subtotal: 0.01, PromoRate: 0.10},
		{Subtotal: 19.99, PromoRate: 0.20, PointsBalance: 77, RedeemPoints: true},
		{Subtotal: 100, PointsBalance: 3, RedeemPoints: true},
		{Subtotal: 12345.67, PromoRate: 0.10, PointsBalance: 100000, RedeemPoints: true},
	}

	for _, q := range quotes {
		result := Compute(q)

		require.GreaterOrEqual(t, result.FinalTotal, 0.00)
		require.LessOrEqual(t, result.FinalTotal, q.Subtotal)
		require.GreaterOrEqual(t, result.PointsEarned, int64(0))
		require.GreaterOrEqual(t, result.PointsRedeemed, int64(0))
	}
}

func TestCompute_Idempotent(t *testing.T) {
	q := Quote{Subtotal: 73.21, PromoRate: 0.10, PointsBalance: 240, RedeemPoints: true}

	assert.Equal(t, Compute(q), Compute(q))
}

func TestNewBalance(t *testing.T) {
	assert.Equal(t, int64(302), NewBalance(500, 200, 2))
	assert.Equal(t, int64(4), NewBalance(0, 0, 4))
	assert.Equal(t, int64(0), NewBalance(10, 20, 5))
}
