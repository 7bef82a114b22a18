package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/catalog"
	"github.com/merchhub/server/internal/shared/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Shared across tests; prometheus collectors can only be registered once
// per process.
var testMetrics = metrics.New("ordertest")

// --- Mock implementations ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) PlaceOrder(ctx context.Context, o *Order, product *catalog.Product) error {
	args := m.Called(ctx, o, product)
	return args.Error(0)
}

func (m *MockRepository) GetByOrderNo(ctx context.Context, orderNo string) (*Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]*Order, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, orderNo string, status Status) error {
	args := m.Called(ctx, orderNo, status)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, orderNo string) error {
	args := m.Called(ctx, orderNo)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockCatalogRepository) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

// --- Helpers ---

func newTestService(repo Repository, catalogRepo catalog.Repository, now time.Time) *Service {
	s := NewService(repo, catalogRepo, testMetrics, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func testShirt() *catalog.Product {
	return &catalog.Product{
		ID:              uuid.New(),
		Name:            "Custom Shirt",
		Category:        catalog.CategoryCustom,
		Code:            "TSH",
		AttributeSet:    catalog.AttributeSetShirt,
		UnitPrice:       decimal.RequireFromString("50.00"),
		ProductionHours: 2,
	}
}

func testCap() *catalog.Product {
	return &catalog.Product{
		ID:            uuid.New(),
		Name:          "Club Cap",
		Category:      catalog.CategoryReadyStock,
		Code:          "CAP",
		AttributeSet:  catalog.AttributeSetNone,
		UnitPrice:     decimal.RequireFromString("15.00"),
		StockQuantity: 20,
	}
}

// --- Tests ---

func TestService_PlaceOrder(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	product := testShirt()

	repo := new(MockRepository)
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", mock.Anything, product.ID).Return(product, nil)
	repo.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*order.Order"), product).
		Run(func(args mock.Arguments) {
			o := args.Get(1).(*Order)
			o.OrderNo = FormatOrderNo(product.Code, o.OrderDate, 1)
		}).
		Return(nil)

	svc := newTestService(repo, catalogRepo, now)

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ProductID:    product.ID,
		Quantity:     12,
		CustomerName: "Aina",
		Address:      "12 Jalan Besar",
		Customization: CustomizationInput{
			Size:  "M",
			Color: "Black",
			Text:  "Team Alpha",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "TSH-29082026-001", o.OrderNo)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, "600.00", o.Subtotal.StringFixed(2))
	assert.Equal(t, "60.00", o.Discount.StringFixed(2))
	assert.Equal(t, "540.00", o.TotalPrice.StringFixed(2))
	assert.Equal(t, "M", o.CustSize)
	assert.Equal(t, "Black", o.CustColor)
	assert.Equal(t, "Team Alpha", o.CustText)
	// 2h x 12 = 24h production + 72h shipping
	assert.Equal(t, now.Add(96*time.Hour), o.ExpectedDate)
	repo.AssertExpectations(t)
}

func TestService_PlaceOrder_DefaultsCustomerName(t *testing.T) {
	now := time.Now()
	product := testCap()

	repo := new(MockRepository)
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", mock.Anything, product.ID).Return(product, nil)
	repo.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*order.Order"), product).Return(nil)

	svc := newTestService(repo, catalogRepo, now)

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  2,
		Address:   "pickup at counter",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCustomerName, o.CustomerName)
	assert.Equal(t, NotApplicable, o.CustSize)
	assert.Equal(t, NotApplicable, o.CustColor)
	assert.Equal(t, NotApplicable, o.CustText)
}

func TestService_PlaceOrder_InvalidQuantity(t *testing.T) {
	svc := newTestService(new(MockRepository), new(MockCatalogRepository), time.Now())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ProductID: uuid.New(),
		Quantity:  0,
		Address:   "somewhere",
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_PlaceOrder_InsufficientStock(t *testing.T) {
	product := testCap()

	repo := new(MockRepository)
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", mock.Anything, product.ID).Return(product, nil)
	repo.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*order.Order"), product).
		Return(catalog.ErrInsufficientStock)

	svc := newTestService(repo, catalogRepo, time.Now())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  5,
		Address:   "somewhere",
	})
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
}

func TestService_Quote(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	product := testShirt()

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", mock.Anything, product.ID).Return(product, nil)

	svc := newTestService(new(MockRepository), catalogRepo, now)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		ProductID: product.ID,
		Quantity:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, "500.00", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "50.00", quote.Discount.StringFixed(2))
	assert.Equal(t, "450.00", quote.Total.StringFixed(2))
	assert.Equal(t, BulkDiscountLabel, quote.DiscountLabel)
	assert.Equal(t, now, quote.OrderDate)
	// 2h x 10 = 20h production, then 72h shipping
	assert.Equal(t, now.Add(20*time.Hour), quote.ShippingEstimate)
	assert.Equal(t, now.Add(92*time.Hour), quote.ExpectedDelivery)
}

func TestService_UpdateStatus(t *testing.T) {
	existing := &Order{OrderNo: "CAS-01082026-001", Status: StatusProcessing}

	repo := new(MockRepository)
	repo.On("GetByOrderNo", mock.Anything, existing.OrderNo).Return(existing, nil)
	repo.On("UpdateStatus", mock.Anything, existing.OrderNo, StatusShipped).Return(nil)

	svc := newTestService(repo, new(MockCatalogRepository), time.Now())

	o, err := svc.UpdateStatus(context.Background(), existing.OrderNo, StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	existing := &Order{OrderNo: "CAS-01082026-001", Status: StatusProcessing}

	repo := new(MockRepository)
	repo.On("GetByOrderNo", mock.Anything, existing.OrderNo).Return(existing, nil)

	svc := newTestService(repo, new(MockCatalogRepository), time.Now())

	_, err := svc.UpdateStatus(context.Background(), existing.OrderNo, Status("Teleported"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DeleteOrder_BlockedByIssues(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, "TSH-01082026-003").Return(ErrOrderHasIssues)

	svc := newTestService(repo, new(MockCatalogRepository), time.Now())

	err := svc.DeleteOrder(context.Background(), "TSH-01082026-003")
	assert.ErrorIs(t, err, ErrOrderHasIssues)
}

func TestService_ListOrders_RejectsUnknownStatusFilter(t *testing.T) {
	svc := newTestService(new(MockRepository), new(MockCatalogRepository), time.Now())

	_, _, err := svc.ListOrders(context.Background(), ListFilter{Status: Status("Misplaced")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
