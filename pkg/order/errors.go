package order

import "errors"

var (
	// ErrNotFound is returned when no order exists for the requested ID.
	ErrNotFound = errors.New("order.errors.not_found")

	// ErrInvalidOrder is returned when an order fails basic integrity checks
	// before being persisted.
	ErrInvalidOrder = errors.New("order.errors.invalid_order")
)
