package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Category        Category        `json:"category"`
	CategoryLabel   string          `json:"category_label"`
	AttributeSet    AttributeSet    `json:"attribute_set"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	StockQuantity   int             `json:"stock_quantity"`
	ProductionHours int             `json:"production_hours"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToResponse converts a Product to ProductResponse.
func (p *Product) ToResponse() *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		CategoryLabel:   p.Category.Label(),
		AttributeSet:    p.AttributeSet,
		UnitPrice:       p.UnitPrice,
		StockQuantity:   p.StockQuantity,
		ProductionHours: p.ProductionHours,
		CreatedAt:       p.CreatedAt,
	}
}
