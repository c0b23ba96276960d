package domain

import "context"

type PromocodesRepository interface {
	// GetRate returns the discount fraction for code, or 0 if the code is unknown.
	GetRate(ctx context.Context, code string) (float64, error)
	GetAllPromocodes(ctx context.Context) ([]*Promocode, error)
}

type Promocode struct {
	Code         string  `json:"code"`
	DiscountRate float64 `json:"discount_rate"`
}
