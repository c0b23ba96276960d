package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/pkg/errs"
	"github.com/spicybites/pos/pkg/log"
	"go.uber.org/zap"
)

type salesRepository struct {
	psql *pgxpool.Pool
}

func NewSalesRepository(pool *pgxpool.Pool) domain.SalesRepository {
	return &salesRepository{
		psql: pool,
	}
}

// RecordSale creates the customer if needed, applies the loyalty balance
// change and appends the sale, all in one transaction. Either both writes
// commit or neither is visible.
func (sr *salesRepository) RecordSale(ctx context.Context, sale *domain.SaleRecord) (int64, error) {
	tx, err := sr.psql.Begin(ctx)
	if err != nil {
		return 0, errs.NewStack(err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Error("failed to rollback transaction", zap.Error(err))
		}
	}()

	query := `INSERT INTO spicy_bites.customers(name, contact, membership, loyalty_points)
		VALUES ($1, '', $2, 0)
		ON CONFLICT (name) DO NOTHING`
	if _, err := tx.Exec(ctx, query, sale.CustomerName, domain.DefaultMembership); err != nil {
		return 0, errs.NewStack(err)
	}

	query = `UPDATE spicy_bites.customers
		SET loyalty_points = GREATEST(0, loyalty_points - $1 + $2),
			updated_at = NOW()
		WHERE name = $3
		RETURNING loyalty_points`
	var newBalance int64
	if err := tx.QueryRow(ctx, query, sale.PointsRedeemed, sale.PointsEarned, sale.CustomerName).Scan(&newBalance); err != nil {
		return 0, errs.NewStack(err)
	}

	query = `INSERT INTO spicy_bites.sales(
			receipt_id,
			customer_name,
			processed_by,
			subtotal,
			discount_amount,
			points_redeemed,
			final_total,
			points_earned,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	if err := tx.QueryRow(ctx,
		query,
		sale.ReceiptID,
		sale.CustomerName,
		sale.ProcessedBy,
		sale.Subtotal,
		sale.DiscountAmount,
		sale.PointsRedeemed,
		sale.FinalTotal,
		sale.PointsEarned,
		sale.CreatedAt,
	).Scan(&sale.ID); err != nil {
		return 0, errs.NewStack(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.NewStack(err)
	}

	return newBalance, nil
}

func (sr *salesRepository) GetSalesPagesCount(ctx context.Context, customerName string) (int64, error) {
	query := `SELECT COUNT(*) FROM spicy_bites.sales WHERE customer_name = $1`
	var salesCount int64
	if err := sr.psql.QueryRow(ctx, query, customerName).Scan(&salesCount); err != nil {
		return 0, errs.NewStack(err)
	}

	pagesCount := (salesCount + domain.SalesPerPage - 1) / domain.SalesPerPage
	return pagesCount, nil
}

func (sr *salesRepository) GetSalesByPage(ctx context.Context, customerName string, page int64) ([]*domain.SaleRecord, error) {
	query := `SELECT id,
			receipt_id,
			customer_name,
			processed_by,
			subtotal,
			discount_amount,
			points_redeemed,
			final_total,
			points_earned,
			created_at
		FROM spicy_bites.sales
		WHERE customer_name = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := sr.psql.Query(ctx, query, customerName, domain.SalesPerPage, (page-1)*domain.SalesPerPage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*domain.SaleRecord{}, nil
		}

		return nil, errs.NewStack(err)
	}
	defer rows.Close()

	sales := []*domain.SaleRecord{}
	for rows.Next() {
		sale := &Sale{}
		if err := rows.Scan(
			&sale.ID,
			&sale.ReceiptID,
			&sale.CustomerName,
			&sale.ProcessedBy,
			&sale.Subtotal,
			&sale.DiscountAmount,
			&sale.PointsRedeemed,
			&sale.FinalTotal,
			&sale.PointsEarned,
			&sale.CreatedAt,
		); err != nil {
			return nil, errs.NewStack(err)
		}
		sales = append(sales, sale.CreateDomain())
	}

	return sales, nil
}
