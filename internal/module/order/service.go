package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/merchhub/server/internal/module/catalog"
	"github.com/merchhub/server/internal/shared/metrics"
	"go.uber.org/zap"
)

// Service implements order operations.
type Service struct {
	repo         Repository
	catalog      catalog.Repository
	stateMachine *StateMachine
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewService creates a new order service.
func NewService(repo Repository, catalogRepo catalog.Repository, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		repo:         repo,
		catalog:      catalogRepo,
		stateMachine: NewStateMachine(logger),
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Quote prices an order without placing it. The client shows this as the
// receipt preview before the customer confirms.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if err := product.CheckStock(req.Quantity); err != nil {
		return nil, err
	}

	now := s.now()
	quote := Price(product.UnitPrice, req.Quantity)
	estimate := EstimateFulfillment(now, product.ProductionHours, req.Quantity)

	return &QuoteResponse{
		ProductID:        product.ID,
		ProductName:      product.Name,
		UnitPrice:        product.UnitPrice,
		Quantity:         req.Quantity,
		Subtotal:         quote.Subtotal,
		Discount:         quote.Discount,
		DiscountLabel:    quote.DiscountLabel,
		Total:            quote.Total,
		OrderDate:        now,
		ShippingEstimate: estimate.ProductionComplete,
		ExpectedDelivery: estimate.ExpectedDelivery,
	}, nil
}

// PlaceOrder confirms an order: it resolves customization, freezes the
// price, estimates delivery and persists the order together with the stock
// decrement and identifier assignment.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	customization, err := ResolveCustomization(product, req.Customization)
	if err != nil {
		return nil, err
	}

	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	now := s.now()
	quote := Price(product.UnitPrice, req.Quantity)
	estimate := EstimateFulfillment(now, product.ProductionHours, req.Quantity)

	o := &Order{
		ProductID:    product.ID,
		CustomerName: customerName,
		Address:      req.Address,
		Quantity:     req.Quantity,
		CustSize:     customization.Size,
		CustColor:    customization.Color,
		CustText:     customization.Text,
		Subtotal:     quote.Subtotal,
		Discount:     quote.Discount,
		TotalPrice:   quote.Total,
		Status:       StatusProcessing,
		OrderDate:    now,
		ExpectedDate: estimate.ExpectedDelivery,
	}

	if err := s.repo.PlaceOrder(ctx, o, product); err != nil {
		if errors.Is(err, catalog.ErrInsufficientStock) {
			s.metrics.StockRejectionsTotal.Inc()
		}
		return nil, err
	}

	o.Product = product
	s.metrics.OrdersPlacedTotal.WithLabelValues(string(product.Category)).Inc()
	s.logger.Info("order placed",
		zap.String("order_no", o.OrderNo),
		zap.String("product", product.Name),
		zap.Int("quantity", o.Quantity),
		zap.String("total", o.TotalPrice.StringFixed(2)),
	)

	return o, nil
}

// GetOrder returns an order by its order number.
func (s *Service) GetOrder(ctx context.Context, orderNo string) (*Order, error) {
	return s.repo.GetByOrderNo(ctx, orderNo)
}

// ListOrders returns orders matching the filter.
func (s *Service) ListOrders(ctx context.Context, filter ListFilter) ([]*Order, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus moves an order to a new status.
func (s *Service) UpdateStatus(ctx context.Context, orderNo string, status Status) (*Order, error) {
	o, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	if err := s.stateMachine.Transition(orderNo, o.Status, status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, orderNo, status); err != nil {
		return nil, err
	}

	s.metrics.StatusTransitionsTotal.WithLabelValues(string(o.Status), string(status)).Inc()
	o.Status = status
	return o, nil
}

// DeleteOrder removes an order record. Orders with linked issues are
// protected; the issues must be resolved and removed first.
func (s *Service) DeleteOrder(ctx context.Context, orderNo string) error {
	if err := s.repo.Delete(ctx, orderNo); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("order_no", orderNo))
	return nil
}
