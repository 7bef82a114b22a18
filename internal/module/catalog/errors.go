package catalog

import "errors"

// Module errors.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidCategory   = errors.New("invalid product category")
)
