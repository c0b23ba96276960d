package poserrs

import "errors"

var (
	ErrStaffRequired    = errors.New("staff username is required")
	ErrCustomerRequired = errors.New("customer name is required")
	ErrInvalidSubtotal  = errors.New("subtotal must be a non-negative amount")
	ErrCustomerNotFound = errors.New("customer not found")
)
