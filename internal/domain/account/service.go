// internal/domain/account/service.go
package account

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-gateway/internal/platform"
)

// Platform covers the account-facing remote operations
type Platform interface {
	Addresses(ctx context.Context) ([]platform.Address, error)
	RegisterAddress(ctx context.Context, input platform.AddressInput) (*platform.Address, error)
	UpdateAddress(ctx context.Context, addressID, addressTypeID int, input platform.AddressInput) (*platform.Address, error)
	DeleteAddress(ctx context.Context, addressID int) error
	PaymentMethods(ctx context.Context) ([]platform.PaymentMethod, error)
	CustomerProfile(ctx context.Context) (*platform.CustomerProfile, error)
	Orders(ctx context.Context) ([]platform.Order, error)
	OrderItems(ctx context.Context, orderID int) ([]platform.Product, error)
	RegisterReview(ctx context.Context, input platform.ReviewInput) (*platform.Review, error)
	SendEmailVerification(ctx context.Context) error
}

// Service exposes address and payment-method management for the
// authenticated customer
type Service struct {
	platform Platform
}

// NewService creates a new account service
func NewService(p Platform) *Service {
	return &Service{platform: p}
}

// ListAddresses returns the customer's saved addresses
func (s *Service) ListAddresses(ctx context.Context) ([]platform.Address, error) {
	addresses, err := s.platform.Addresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// CreateAddress saves a new address
func (s *Service) CreateAddress(ctx context.Context, input platform.AddressInput) (*platform.Address, error) {
	address, err := s.platform.RegisterAddress(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}

// UpdateAddress replaces an existing address
func (s *Service) UpdateAddress(ctx context.Context, addressID, addressTypeID int, input platform.AddressInput) (*platform.Address, error) {
	address, err := s.platform.UpdateAddress(ctx, addressID, addressTypeID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update address %d: %w", addressID, err)
	}
	return address, nil
}

// DeleteAddress removes a saved address
func (s *Service) DeleteAddress(ctx context.Context, addressID int) error {
	if err := s.platform.DeleteAddress(ctx, addressID); err != nil {
		return fmt.Errorf("failed to delete address %d: %w", addressID, err)
	}
	return nil
}

// ListPaymentMethods returns the customer's saved payment methods
func (s *Service) ListPaymentMethods(ctx context.Context) ([]platform.PaymentMethod, error) {
	methods, err := s.platform.PaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// ListOrders returns the customer's order history
func (s *Service) ListOrders(ctx context.Context) ([]platform.Order, error) {
	orders, err := s.platform.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListOrderItems returns the products that make up one order
func (s *Service) ListOrderItems(ctx context.Context, orderID int) ([]platform.Product, error) {
	items, err := s.platform.OrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for order %d: %w", orderID, err)
	}
	return items, nil
}

// CreateReview registers a review for a product the customer ordered
func (s *Service) CreateReview(ctx context.Context, input platform.ReviewInput) (*platform.Review, error) {
	review, err := s.platform.RegisterReview(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to register review: %w", err)
	}
	return review, nil
}

// SendEmailVerification asks the platform to mail a verification link
func (s *Service) SendEmailVerification(ctx context.Context) error {
	if err := s.platform.SendEmailVerification(ctx); err != nil {
		return fmt.Errorf("failed to send email verification: %w", err)
	}
	return nil
}

// GetProfile returns the customer profile for the authenticated user
func (s *Service) GetProfile(ctx context.Context) (*platform.CustomerProfile, error) {
	profile, err := s.platform.CustomerProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer profile: %w", err)
	}
	return profile, nil
}
