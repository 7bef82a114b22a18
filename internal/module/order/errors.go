package order

import "errors"

var (
	// ErrOrderNotFound is returned when no order matches the identifier.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidQuantity is returned when the requested quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidCustomization is returned when selections don't match the
	// product's customization schema.
	ErrInvalidCustomization = errors.New("invalid customization")
	// ErrInvalidStatus is returned when a status value is unknown.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrOrderHasIssues is returned when deleting an order that still has
	// issue records attached.
	ErrOrderHasIssues = errors.New("order has linked issues")
)
