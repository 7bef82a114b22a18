package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/catalog"
	"github.com/shopspring/decimal"
)

// Status represents the fulfillment status of an order.
type Status string

const (
	StatusProcessing     Status = "Processing"
	StatusInProduction   Status = "In Production"
	StatusShipped        Status = "Shipped"
	StatusCompleted      Status = "Completed"
	StatusCancelled      Status = "Cancelled"
	StatusRefunded       Status = "Refunded"
	StatusRedoInProgress Status = "Redo In Progress"
)

// AllStatuses lists every order status in display order.
var AllStatuses = []Status{
	StatusProcessing,
	StatusInProduction,
	StatusShipped,
	StatusCompleted,
	StatusCancelled,
	StatusRefunded,
	StatusRedoInProgress,
}

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// NotApplicable is the sentinel for customization attributes a product
// does not use.
const NotApplicable = "N/A"

// DefaultCustomerName is recorded when staff leave the customer name blank.
const DefaultCustomerName = "Walk-in"

// Order represents a confirmed merchandise order. Price fields are frozen
// at confirmation: later catalog price changes and status transitions never
// recompute them.
type Order struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNo      string    `json:"order_no" gorm:"uniqueIndex;not null"`
	ProductID    uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Address      string    `json:"address" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`

	CustSize  string `json:"cust_size" gorm:"not null;default:N/A"`
	CustColor string `json:"cust_color" gorm:"not null;default:N/A"`
	CustText  string `json:"cust_text" gorm:"not null;default:N/A"`

	Subtotal   decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Discount   decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`

	Status       Status    `json:"status" gorm:"not null;default:Processing"`
	OrderDate    time.Time `json:"order_date" gorm:"not null"`
	ExpectedDate time.Time `json:"expected_date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Product *catalog.Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName returns the database table name.
func (Order) TableName() string {
	return "orders"
}

// ShippingEstimate returns the date shipping is expected to start, three
// days before the delivery estimate.
func (o *Order) ShippingEstimate() time.Time {
	return o.ExpectedDate.Add(-ShippingBuffer)
}

// Sequence is the per-day order counter used for identifier generation.
// The row for a day is bumped atomically inside the placement transaction,
// so two operators placing orders in the same instant can never draw the
// same number.
type Sequence struct {
	Day   time.Time `gorm:"primaryKey;type:date"`
	Value int       `gorm:"not null"`
}

// TableName returns the database table name.
func (Sequence) TableName() string {
	return "order_sequences"
}
