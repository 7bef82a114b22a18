package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRequest asks for a priced preview of an order before confirming it.
type QuoteRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// QuoteResponse is the receipt preview shown before confirmation.
type QuoteResponse struct {
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	DiscountLabel    string          `json:"discount_label"`
	Total            decimal.Decimal `json:"total"`
	OrderDate        time.Time       `json:"order_date"`
	ShippingEstimate time.Time       `json:"shipping_estimate"`
	ExpectedDelivery time.Time       `json:"expected_delivery"`
}

// PlaceOrderRequest confirms an order.
type PlaceOrderRequest struct {
	ProductID     uuid.UUID          `json:"product_id" binding:"required"`
	Quantity      int                `json:"quantity" binding:"required,min=1"`
	CustomerName  string             `json:"customer_name"`
	Address       string             `json:"address" binding:"required"`
	Customization CustomizationInput `json:"customization"`
}

// UpdateStatusRequest sets an order's status.
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderNo      string    `json:"order_no"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address"`
	Quantity     int       `json:"quantity"`

	CustSize  string `json:"cust_size"`
	CustColor string `json:"cust_color"`
	CustText  string `json:"cust_text"`

	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	TotalPrice decimal.Decimal `json:"total_price"`

	Status           Status    `json:"status"`
	OrderDate        time.Time `json:"order_date"`
	ShippingEstimate time.Time `json:"shipping_estimate"`
	ExpectedDate     time.Time `json:"expected_date"`
}

// ToResponse converts an Order to OrderResponse.
func (o *Order) ToResponse() *OrderResponse {
	resp := &OrderResponse{
		ID:               o.ID,
		OrderNo:          o.OrderNo,
		ProductID:        o.ProductID,
		CustomerName:     o.CustomerName,
		Address:          o.Address,
		Quantity:         o.Quantity,
		CustSize:         o.CustSize,
		CustColor:        o.CustColor,
		CustText:         o.CustText,
		Subtotal:         o.Subtotal,
		Discount:         o.Discount,
		TotalPrice:       o.TotalPrice,
		Status:           o.Status,
		OrderDate:        o.OrderDate,
		ShippingEstimate: o.ShippingEstimate(),
		ExpectedDate:     o.ExpectedDate,
	}
	if o.Product != nil {
		resp.ProductName = o.Product.Name
	}
	return resp
}

// ListOrdersResponse is a paginated order listing.
type ListOrdersResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
