// internal/domain/supplier/service.go
package supplier

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-gateway/internal/platform"
)

// Platform covers the supplier-console remote operations
type Platform interface {
	SupplierProfile(ctx context.Context) (*platform.SupplierProfile, error)
	SupplierProducts(ctx context.Context, supplierID int, paginator platform.Paginator) (*platform.ProductPage, error)
	RegisterProduct(ctx context.Context, input platform.ProductInput) (*platform.Product, error)
	UpdateProduct(ctx context.Context, productID int, input platform.ProductInput) (*platform.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
}

// Service exposes the supplier product-management console: the supplier's
// own profile plus paginated CRUD over their products
type Service struct {
	platform Platform
}

// NewService creates a new supplier service
func NewService(p Platform) *Service {
	return &Service{platform: p}
}

// GetProfile returns the supplier profile for the authenticated user
func (s *Service) GetProfile(ctx context.Context) (*platform.SupplierProfile, error) {
	profile, err := s.platform.SupplierProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier profile: %w", err)
	}
	return profile, nil
}

// ListProducts fetches one page of the authenticated supplier's products
func (s *Service) ListProducts(ctx context.Context, page, pageSize int) (*platform.ProductPage, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.platform.SupplierProducts(ctx, profile.SupplierID, platform.DefaultPaginator(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier products: %w", err)
	}
	return result, nil
}

// CreateProduct registers a new product under the authenticated supplier.
// The supplier id always comes from the profile, never from the caller.
func (s *Service) CreateProduct(ctx context.Context, input platform.ProductInput) (*platform.Product, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	input.SupplierID = profile.SupplierID

	product, err := s.platform.RegisterProduct(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to register product: %w", err)
	}
	return product, nil
}

// UpdateProduct replaces an existing product's details
func (s *Service) UpdateProduct(ctx context.Context, productID int, input platform.ProductInput) (*platform.Product, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	input.SupplierID = profile.SupplierID

	product, err := s.platform.UpdateProduct(ctx, productID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return product, nil
}

// DeleteProduct removes a supplier product
func (s *Service) DeleteProduct(ctx context.Context, productID int) error {
	if err := s.platform.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	return nil
}
