package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category represents how a product is fulfilled.
type Category string

const (
	// CategoryReadyStock products are fulfilled from on-hand inventory.
	CategoryReadyStock Category = "ready_stock"
	// CategoryCustom products are produced to order.
	CategoryCustom Category = "custom"
)

// Valid reports whether the category is a known value.
func (c Category) Valid() bool {
	return c == CategoryReadyStock || c == CategoryCustom
}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryReadyStock:
		return "Ready Stock"
	case CategoryCustom:
		return "Custom"
	default:
		return string(c)
	}
}

// AttributeSet selects the customization schema for a product. It is
// authored with the product, so order placement never has to derive
// customization rules from the product name.
type AttributeSet string

const (
	AttributeSetPhoneCase AttributeSet = "phone_case"
	AttributeSetShirt     AttributeSet = "shirt"
	AttributeSetNone      AttributeSet = "none"
)

// DefaultOrderCode is the order identifier prefix for products without a
// dedicated code.
const DefaultOrderCode = "FAI"

// Product represents a catalog product.
type Product struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string          `json:"name" gorm:"not null"`
	Category        Category        `json:"category" gorm:"not null;index"`
	Code            string          `json:"code" gorm:"size:4;not null;default:FAI"`
	AttributeSet    AttributeSet    `json:"attribute_set" gorm:"not null;default:none"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	StockQuantity   int             `json:"stock_quantity"`
	ProductionHours int             `json:"production_hours"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName returns the database table name.
func (Product) TableName() string {
	return "products"
}

// BeforeSave enforces the category invariant: ready-stock products track
// stock only, custom products track production hours only.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if !p.Category.Valid() {
		return ErrInvalidCategory
	}
	switch p.Category {
	case CategoryReadyStock:
		p.ProductionHours = 0
	case CategoryCustom:
		p.StockQuantity = 0
	}
	if p.Code == "" {
		p.Code = DefaultOrderCode
	}
	return nil
}

// Stocked reports whether the product is fulfilled from inventory.
func (p *Product) Stocked() bool {
	return p.Category == CategoryReadyStock
}

// CheckStock verifies the requested quantity is available. Custom
// products are never stock-checked.
func (p *Product) CheckStock(quantity int) error {
	if p.Stocked() && quantity > p.StockQuantity {
		return ErrInsufficientStock
	}
	return nil
}
