package domain

import (
	"context"
	"time"
)

type SalesRepository interface {
	// RecordSale applies the loyalty balance change and appends the sale in a
	// single transaction. The customer is created first if it does not exist.
	// Returns the customer's new loyalty balance.
	RecordSale(ctx context.Context, sale *SaleRecord) (int64, error)
	GetSalesPagesCount(ctx context.Context, customerName string) (int64, error)
	GetSalesByPage(ctx context.Context, customerName string, page int64) ([]*SaleRecord, error)
}

type SaleRecord struct {
	ID        int64  `json:"id"`
	ReceiptID string `json:"receipt_id"`

	CustomerName string `json:"customer_name"`
	ProcessedBy  string `json:"processed_by"`

	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	PointsRedeemed int64   `json:"points_redeemed"`
	FinalTotal     float64 `json:"final_total"`
	PointsEarned   int64   `json:"points_earned"`

	CreatedAt time.Time `json:"created_at"`
}
