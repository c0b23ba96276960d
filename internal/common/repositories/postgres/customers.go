package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/pkg/errs"
)

type customersRepository struct {
	psql *pgxpool.Pool
}

func NewCustomersRepository(pool *pgxpool.Pool) domain.CustomersRepository {
	return &customersRepository{
		psql: pool,
	}
}

func (cr *customersRepository) GetCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	query := `SELECT
			id,
			name,
			contact,
			membership,
			loyalty_points,
			created_at,
			updated_at
		FROM spicy_bites.customers WHERE name = $1`
	customer := &Customer{}
	if err := cr.psql.QueryRow(ctx, query, name).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Contact,
		&customer.Membership,
		&customer.LoyaltyPoints,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, errs.NewStack(err)
	}

	return customer.CreateDomain(), nil
}

func (cr *customersRepository) UpsertCustomer(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO spicy_bites.customers(name, contact, membership, loyalty_points)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET contact = EXCLUDED.contact,
			membership = EXCLUDED.membership,
			loyalty_points = EXCLUDED.loyalty_points,
			updated_at = NOW()`
	_, err := cr.psql.Exec(ctx,
		query,
		customer.Name,
		customer.Contact,
		customer.Membership,
		customer.LoyaltyPoints,
	)
	if err != nil {
		return errs.NewStack(err)
	}

	return nil
}
