package order

import (
	"context"
	"errors"
	"time"

	"github.com/merchhub/server/internal/module/catalog"
	"gorm.io/gorm"
)

// ListFilter narrows order listings.
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// Repository defines the interface for order data access.
type Repository interface {
	// PlaceOrder assigns the order's identifier from the per-day sequence,
	// inserts it and decrements ready-stock inventory, all in one
	// transaction.
	PlaceOrder(ctx context.Context, o *Order, product *catalog.Product) error
	GetByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
	UpdateStatus(ctx context.Context, orderNo string, status Status) error
	Delete(ctx context.Context, orderNo string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new order repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PlaceOrder(ctx context.Context, o *Order, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSequence(tx, o.OrderDate)
		if err != nil {
			return err
		}
		o.OrderNo = FormatOrderNo(product.Code, o.OrderDate, seq)

		if err := tx.Create(o).Error; err != nil {
			return err
		}

		if product.Stocked() {
			if err := catalog.DecrementStock(tx, product.ID, o.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// nextSequence bumps and returns the day's order counter. The upsert is a
// single statement, so concurrent placements serialize on the row and each
// caller sees a distinct value.
func nextSequence(tx *gorm.DB, day time.Time) (int, error) {
	var value int
	err := tx.Raw(`
		INSERT INTO order_sequences (day, value) VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = order_sequences.value + 1
		RETURNING value`,
		day.Format("2006-01-02"),
	).Scan(&value).Error
	return value, err
}

func (r *repository) GetByOrderNo(ctx context.Context, orderNo string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&o, "order_no = ?", orderNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []*Order
	err := query.
		Preload("Product").
		Order("order_date DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *repository) UpdateStatus(ctx context.Context, orderNo string, status Status) error {
	res := r.db.WithContext(ctx).Model(&Order{}).
		Where("order_no = ?", orderNo).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, orderNo string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.First(&o, "order_no = ?", orderNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		// Issue records reference the order; refuse to orphan them.
		var issues int64
		if err := tx.Table("issues").Where("order_id = ?", o.ID).Count(&issues).Error; err != nil {
			return err
		}
		if issues > 0 {
			return ErrOrderHasIssues
		}

		return tx.Delete(&o).Error
	})
}
