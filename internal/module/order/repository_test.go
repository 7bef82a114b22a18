package order

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return gdb, mock
}

func stockedCap() *catalog.Product {
	return &catalog.Product{
		ID:            uuid.New(),
		Name:          "Classic Cap",
		Category:      catalog.CategoryReadyStock,
		Code:          "CAP",
		AttributeSet:  catalog.AttributeSetNone,
		UnitPrice:     decimal.RequireFromString("15.00"),
		StockQuantity: 20,
	}
}

func pendingOrder(product *catalog.Product, quantity int, day time.Time) *Order {
	unit := product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return &Order{
		ProductID:    product.ID,
		CustomerName: DefaultCustomerName,
		Address:      "pickup at counter",
		Quantity:     quantity,
		CustSize:     NotApplicable,
		CustColor:    NotApplicable,
		CustText:     NotApplicable,
		Subtotal:     unit,
		Discount:     decimal.RequireFromString("0.00"),
		TotalPrice:   unit,
		Status:       StatusProcessing,
		OrderDate:    day,
		ExpectedDate: day.Add(96 * time.Hour),
	}
}

func TestNextSequence_CountsUpWithinDay(t *testing.T) {
	gdb, mock := newMockDB(t)
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO order_sequences`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO order_sequences`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(2))

	first, err := nextSequence(gdb, day)
	require.NoError(t, err)
	second, err := nextSequence(gdb, day)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PlaceOrder_AssignsOrderNoAndDecrementsStock(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	product := stockedCap()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	o := pendingOrder(product, 3, day)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO order_sequences`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "products" SET .+ WHERE id = \$2 AND stock_quantity >= \$3`).
		WithArgs(3, product.ID, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.PlaceOrder(context.Background(), o, product))
	assert.Equal(t, "CAP-29082026-001", o.OrderNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PlaceOrder_RollsBackWhenStockGuardFails(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	product := stockedCap()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	o := pendingOrder(product, 50, day)

	// The guarded update matches no row, so the whole placement rolls
	// back: neither the order row nor the sequence bump survives.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO order_sequences`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(4))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "products" SET .+ WHERE id = \$2 AND stock_quantity >= \$3`).
		WithArgs(50, product.ID, 50).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.PlaceOrder(context.Background(), o, product)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PlaceOrder_CustomProductSkipsStock(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	product := &catalog.Product{
		ID:              uuid.New(),
		Name:            "Custom T-Shirt",
		Category:        catalog.CategoryCustom,
		Code:            "TSH",
		AttributeSet:    catalog.AttributeSetShirt,
		UnitPrice:       decimal.RequireFromString("50.00"),
		ProductionHours: 2,
	}
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	o := pendingOrder(product, 2, day)
	o.CustSize = "M"
	o.CustColor = "Navy Blue"

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO order_sequences`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(12))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	require.NoError(t, repo.PlaceOrder(context.Background(), o, product))
	assert.Equal(t, "TSH-29082026-012", o.OrderNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
