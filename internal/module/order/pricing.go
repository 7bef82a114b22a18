package order

import "github.com/shopspring/decimal"

// Bulk discount policy: 10% off the subtotal at or above the quantity
// threshold.
const BulkDiscountThreshold = 10

var bulkDiscountRate = decimal.NewFromFloat(0.10)

// Discount display labels.
const (
	BulkDiscountLabel = "10% Bulk Discount"
	NoDiscountLabel   = "No Discount"
)

// Quote is a priced order line. All amounts are rounded to cents.
type Quote struct {
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	DiscountLabel string
}

// Price computes the quote for a unit price and quantity. The discount is
// taken on the subtotal, so Total is always Subtotal minus Discount.
func Price(unitPrice decimal.Decimal, quantity int) Quote {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)

	discount := decimal.Zero.Round(2)
	label := NoDiscountLabel
	if quantity >= BulkDiscountThreshold {
		discount = subtotal.Mul(bulkDiscountRate).Round(2)
		label = BulkDiscountLabel
	}

	return Quote{
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal.Sub(discount),
		DiscountLabel: label,
	}
}
