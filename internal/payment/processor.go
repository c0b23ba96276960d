package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/internal/poserrs"
	"github.com/spicybites/pos/pkg/cache"
	"github.com/spicybites/pos/pkg/errs"
	"github.com/spicybites/pos/pkg/log"
	"go.uber.org/zap"
)

const (
	promoCacheTTL     = 5 * time.Minute
	promoCacheCleanup = 10 * time.Minute
)

// Notifier pushes a committed receipt to an external channel. Delivery
// failures must not fail the sale.
type Notifier interface {
	SaleProcessed(receipt *Receipt) error
}

// Sale is the raw operator input for one transaction.
type Sale struct {
	ProcessedBy  string
	CustomerName string
	Subtotal     float64
	PromoCode    string
	RedeemPoints bool
}

// Receipt is the committed outcome of a sale.
type Receipt struct {
	ReceiptID string `json:"receipt_id"`

	ProcessedBy  string `json:"processed_by"`
	CustomerName string `json:"customer_name"`
	PromoCode    string `json:"promo_code,omitempty"`

	Subtotal       float64 `json:"subtotal"`
	PromoDiscount  float64 `json:"promo_discount"`
	RedeemValue    float64 `json:"redeem_value"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalTotal     float64 `json:"final_total"`

	PointsRedeemed int64 `json:"points_redeemed"`
	PointsEarned   int64 `json:"points_earned"`
	NewBalance     int64 `json:"new_balance"`

	CreatedAt time.Time `json:"created_at"`
}

type Processor struct {
	cache *cache.Cache

	customers  domain.CustomersRepository
	promocodes domain.PromocodesRepository
	sales      domain.SalesRepository

	notifier Notifier
}

// NewProcessor wires the transaction core. notifier may be nil.
func NewProcessor(
	customers domain.CustomersRepository,
	promocodes domain.PromocodesRepository,
	sales domain.SalesRepository,
	notifier Notifier,
) *Processor {
	return &Processor{
		cache:      cache.New(promoCacheTTL, promoCacheCleanup),
		customers:  customers,
		promocodes: promocodes,
		sales:      sales,
		notifier:   notifier,
	}
}

// Quote computes the transaction amounts without committing anything.
func (p *Processor) Quote(ctx context.Context, sale *Sale) (*Result, error) {
	if err := validateSale(sale); err != nil {
		return nil, err
	}

	rate, err := p.promoRate(ctx, sale.PromoCode)
	if err != nil {
		return nil, err
	}

	balance, err := p.pointsBalance(ctx, sale.CustomerName)
	if err != nil {
		return nil, err
	}

	result := Compute(Quote{
		Subtotal:      sale.Subtotal,
		PromoRate:     rate,
		PointsBalance: balance,
		RedeemPoints:  sale.RedeemPoints,
	})

	return &result, nil
}

// Process computes the transaction and commits it: the customer's loyalty
// balance is updated and the sale is appended to the log, atomically.
func (p *Processor) Process(ctx context.Context, sale *Sale) (*Receipt, error) {
	result, err := p.Quote(ctx, sale)
	if err != nil {
		return nil, err
	}

	discountAmount := decimal.NewFromFloat(result.PromoDiscount).
		Add(decimal.NewFromFloat(result.RedeemValue)).
		Round(2).InexactFloat64()

	record := &domain.SaleRecord{
		ReceiptID:      uuid.NewString(),
		CustomerName:   sale.CustomerName,
		ProcessedBy:    sale.ProcessedBy,
		Subtotal:       sale.Subtotal,
		DiscountAmount: discountAmount,
		PointsRedeemed: result.PointsRedeemed,
		FinalTotal:     result.FinalTotal,
		PointsEarned:   result.PointsEarned,
		CreatedAt:      time.Now(),
	}

	newBalance, err := p.sales.RecordSale(ctx, record)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{
		ReceiptID:      record.ReceiptID,
		ProcessedBy:    sale.ProcessedBy,
		CustomerName:   sale.CustomerName,
		PromoCode:      normalizePromoCode(sale.PromoCode),
		Subtotal:       sale.Subtotal,
		PromoDiscount:  result.PromoDiscount,
		RedeemValue:    result.RedeemValue,
		DiscountAmount: discountAmount,
		FinalTotal:     result.FinalTotal,
		PointsRedeemed: result.PointsRedeemed,
		PointsEarned:   result.PointsEarned,
		NewBalance:     newBalance,
		CreatedAt:      record.CreatedAt,
	}

	if p.notifier != nil {
		if err := p.notifier.SaleProcessed(receipt); err != nil {
			log.Error("failed to notify receipt",
				zap.String("receipt_id", receipt.ReceiptID),
				zap.Error(err),
			)
		}
	}

	return receipt, nil
}

func (p *Processor) promoRate(ctx context.Context, code string) (float64, error) {
	code = normalizePromoCode(code)
	if code == "" {
		return 0, nil
	}

	if rate, ok := p.cache.Get(code); ok {
		return rate.(float64), nil
	}

	// Unknown codes resolve to a zero rate, not an error.
	rate, err := p.promocodes.GetRate(ctx, code)
	if err != nil {
		return 0, errs.NewStack(err)
	}

	p.cache.Set(code, rate)

	return rate, nil
}

func (p *Processor) pointsBalance(ctx context.Context, name string) (int64, error) {
	customer, err := p.customers.GetCustomerByName(ctx, name)
	if err != nil {
		return 0, errs.NewStack(err)
	}
	if customer == nil {
		return 0, nil
	}

	return customer.LoyaltyPoints, nil
}

func validateSale(sale *Sale) error {
	if strings.TrimSpace(sale.ProcessedBy) == "" {
		return poserrs.ErrStaffRequired
	}
	if strings.TrimSpace(sale.CustomerName) == "" {
		return poserrs.ErrCustomerRequired
	}
	if sale.Subtotal < 0 {
		return poserrs.ErrInvalidSubtotal
	}

	return nil
}

func normalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
