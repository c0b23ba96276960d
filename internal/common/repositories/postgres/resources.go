package postgres

import (
	"time"

	"github.com/spicybites/pos/internal/common/domain"
)

type Customer struct {
	ID int64 `db:"id"`

	Name       string `db:"name"`
	Contact    string `db:"contact"`
	Membership string `db:"membership"`

	LoyaltyPoints int64 `db:"loyalty_points"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *Customer) CreateDomain() *domain.Customer {
	customer := &domain.Customer{
		ID:            c.ID,
		Name:          c.Name,
		Contact:       c.Contact,
		Membership:    c.Membership,
		LoyaltyPoints: c.LoyaltyPoints,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	return customer
}

type Promocode struct {
	Code         string  `db:"code"`
	DiscountRate float64 `db:"discount_rate"`
}

func (p *Promocode) CreateDomain() *domain.Promocode {
	promocode := &domain.Promocode{
		Code:         p.Code,
		DiscountRate: p.DiscountRate,
	}

	return promocode
}

type Sale struct {
	ID        int64  `db:"id"`
	ReceiptID string `db:"receipt_id"`

	CustomerName string `db:"customer_name"`
	ProcessedBy  string `db:"processed_by"`

	Subtotal       float64 `db:"subtotal"`
	DiscountAmount float64 `db:"discount_amount"`
	PointsRedeemed int64   `db:"points_redeemed"`
	FinalTotal     float64 `db:"final_total"`
	PointsEarned   int64   `db:"points_earned"`

	CreatedAt time.Time `db:"created_at"`
}

func (s *Sale) CreateDomain() *domain.SaleRecord {
	sale := &domain.SaleRecord{
		ID:             s.ID,
		ReceiptID:      s.ReceiptID,
		CustomerName:   s.CustomerName,
		ProcessedBy:    s.ProcessedBy,
		Subtotal:       s.Subtotal,
		DiscountAmount: s.DiscountAmount,
		PointsRedeemed: s.PointsRedeemed,
		FinalTotal:     s.FinalTotal,
		PointsEarned:   s.PointsEarned,
		CreatedAt:      s.CreatedAt,
	}

	return sale
}
