// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// Platform covers the read-only catalog operations
type Platform interface {
	Products(ctx context.Context, paginator platform.Paginator) (*platform.ProductPage, error)
	ProductByID(ctx context.Context, productID int) (*platform.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int, paginator platform.Paginator) (*platform.ProductPage, error)
	Categories(ctx context.Context) ([]platform.Category, error)
	ReviewsForProduct(ctx context.Context, productID int, paginator platform.Paginator) (*platform.ReviewPage, error)
}

// Service exposes product browsing backed by the remote catalog
type Service struct {
	platform Platform
}

// NewService creates a new catalog service
func NewService(p Platform) *Service {
	return &Service{platform: p}
}

// ListProducts fetches one page of the catalog
func (s *Service) ListProducts(ctx context.Context, page, pageSize int) (*platform.ProductPage, error) {
	result, err := s.platform.Products(ctx, platform.DefaultPaginator(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return result, nil
}

// GetProduct fetches a single product
func (s *Service) GetProduct(ctx context.Context, productID int) (*platform.Product, error) {
	product, err := s.platform.ProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return product, nil
}

// ListProductsByCategory fetches one page of products within a category
func (s *Service) ListProductsByCategory(ctx context.Context, categoryID, page, pageSize int) (*platform.ProductPage, error) {
	result, err := s.platform.ProductsByCategory(ctx, categoryID, platform.DefaultPaginator(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list products for category %d: %w", categoryID, err)
	}
	return result, nil
}

// ListCategories fetches the catalog categories
func (s *Service) ListCategories(ctx context.Context) ([]platform.Category, error) {
	categories, err := s.platform.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListReviews fetches one page of a product's reviews
func (s *Service) ListReviews(ctx context.Context, productID, page, pageSize int) (*platform.ReviewPage, error) {
	reviews, err := s.platform.ReviewsForProduct(ctx, productID, platform.DefaultPaginator(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for product %d: %w", productID, err)
	}
	return reviews, nil
}

// AsCartProduct converts a catalog product to the immutable reference the
// cart stores. The first media path becomes the cart line's image.
func AsCartProduct(p *platform.Product) cart.Product {
	image := ""
	if len(p.MediaPaths) > 0 {
		image = p.MediaPaths[0]
	}
	return cart.Product{
		ID:          p.ProductID,
		Name:        p.Name,
		Price:       p.BasePrice,
		Image:       image,
		Description: p.Description,
	}
}
