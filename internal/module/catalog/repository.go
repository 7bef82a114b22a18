package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for catalog data access.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Product, error) {
	var products []*Product
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&products).Error
	return products, err
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// DecrementStock reduces a ready-stock product's stock by quantity inside
// the caller's transaction. The update is guarded so two orders racing on
// the same low-stock product cannot jointly overdraw it: if the remaining
// stock is below the requested quantity no row matches and
// ErrInsufficientStock is returned, rolling the caller's transaction back.
func DecrementStock(tx *gorm.DB, productID uuid.UUID, quantity int) error {
	res := tx.Model(&Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
