package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements catalog operations.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns all catalog products.
func (s *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

// GetProduct returns a product by ID.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// GetCustomizationSchema returns the customization schema for a product.
func (s *Service) GetCustomizationSchema(ctx context.Context, id uuid.UUID) (CustomizationSchema, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return CustomizationSchema{}, err
	}
	return SchemaFor(product), nil
}
