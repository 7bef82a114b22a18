package issue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/order"
	"gorm.io/gorm"
)

// OrderUpdate is the order-side effect of resolving an issue: the status
// change and, for redos, the new delivery estimate.
type OrderUpdate struct {
	Status       order.Status
	ExpectedDate *time.Time
}

// Repository defines the interface for issue data access.
type Repository interface {
	// Create inserts the issue and applies the order update in one
	// transaction, so an issue can never exist without its resolution
	// having taken effect on the order.
	Create(ctx context.Context, issue *Issue, update OrderUpdate) error
	Get(ctx context.Context, id uuid.UUID) (*Issue, error)
	List(ctx context.Context) ([]*Issue, error)
	Search(ctx context.Context, query string) ([]*Issue, error)
	UpdateResolution(ctx context.Context, id uuid.UUID, resolution string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new issue repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, issue *Issue, update OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(issue).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"status": update.Status}
		if update.ExpectedDate != nil {
			updates["expected_date"] = *update.ExpectedDate
		}
		return tx.Model(&order.Order{}).
			Where("id = ?", issue.OrderID).
			Updates(updates).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Issue, error) {
	var issue Issue
	err := r.db.WithContext(ctx).
		Preload("Order").
		First(&issue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}

func (r *repository) List(ctx context.Context) ([]*Issue, error) {
	var issues []*Issue
	err := r.db.WithContext(ctx).
		Preload("Order").
		Order("log_date DESC").
		Find(&issues).Error
	return issues, err
}

func (r *repository) Search(ctx context.Context, query string) ([]*Issue, error) {
	pattern := "%" + query + "%"
	var issues []*Issue
	err := r.db.WithContext(ctx).
		Preload("Order").
		Where("kind ILIKE ? OR description ILIKE ? OR resolution ILIKE ?", pattern, pattern, pattern).
		Order("log_date DESC").
		Find(&issues).Error
	return issues, err
}

func (r *repository) UpdateResolution(ctx context.Context, id uuid.UUID, resolution string) error {
	res := r.db.WithContext(ctx).Model(&Issue{}).
		Where("id = ?", id).
		Update("resolution", resolution)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrIssueNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Issue{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrIssueNotFound
	}
	return nil
}
