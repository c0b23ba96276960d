package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/pkg/errs"
)

type promocodesRepository struct {
	psql *pgxpool.Pool
}

func NewPromocodesRepository(pool *pgxpool.Pool) domain.PromocodesRepository {
	return &promocodesRepository{
		psql: pool,
	}
}

func (pr *promocodesRepository) GetRate(ctx context.Context, code string) (float64, error) {
	query := `SELECT discount_rate FROM spicy_bites.promo_codes WHERE code = $1`
	var rate float64
	if err := pr.psql.QueryRow(ctx, query, code).Scan(&rate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, errs.NewStack(err)
	}

	return rate, nil
}

func (pr *promocodesRepository) GetAllPromocodes(ctx context.Context) ([]*domain.Promocode, error) {
	query := `SELECT code, discount_rate FROM spicy_bites.promo_codes ORDER BY code`
	rows, err := pr.psql.Query(ctx, query)
	if err != nil {
		return nil, errs.NewStack(err)
	}
	defer rows.Close()

	promocodes := []*domain.Promocode{}
	for rows.Next() {
		promocode := &Promocode{}
		if err := rows.Scan(
			&promocode.Code,
			&promocode.DiscountRate,
		); err != nil {
			return nil, errs.NewStack(err)
		}
		promocodes = append(promocodes, promocode.CreateDomain())
	}

	return promocodes, nil
}
