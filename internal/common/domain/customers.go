package domain

import (
	"context"
	"time"
)

type CustomersRepository interface {
	GetCustomerByName(ctx context.Context, name string) (*Customer, error)
	UpsertCustomer(ctx context.Context, customer *Customer) error
}

type Customer struct {
	ID int64 `json:"id"`

	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Membership string `json:"membership"`

	LoyaltyPoints int64 `json:"loyalty_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
