package server

import "github.com/spicybites/pos/internal/common/domain"

type saleRequest struct {
	ProcessedBy  string  `json:"processed_by"`
	CustomerName string  `json:"customer_name"`
	Subtotal     float64 `json:"subtotal"`
	PromoCode    string  `json:"promo_code"`
	RedeemPoints bool    `json:"redeem_points"`
}

type upsertCustomerRequest struct {
	Contact    string `json:"contact"`
	Membership string `json:"membership"`

	// When omitted, an existing customer keeps its current balance.
	LoyaltyPoints *int64 `json:"loyalty_points"`
}

type customerSalesResponse struct {
	Page       int64                `json:"page"`
	PagesCount int64                `json:"pages_count"`
	Sales      []*domain.SaleRecord `json:"sales"`
}

type errorResponse struct {
	Error string `json:"error"`
}
