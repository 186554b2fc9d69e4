// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// Local validation errors. These block submission before any remote call is
// made.
var (
	// ErrEmptyCart is returned when there is nothing to order
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAddressRequired is returned when no shipping address is selected
	ErrAddressRequired = errors.New("shipping address must be selected")
	// ErrPaymentRequired is returned when neither an existing payment method
	// is selected nor new payment details are entered
	ErrPaymentRequired = errors.New("payment method must be selected or entered")
)

// CartStore is the slice of the cart the orchestrator consumes
type CartStore interface {
	Items() []cart.LineItem
	Clear(ctx context.Context)
}

// Platform covers the two remote operations checkout depends on
type Platform interface {
	RegisterPaymentMethod(ctx context.Context, input platform.PaymentMethodInput) (*platform.PaymentMethod, error)
	RegisterOrder(ctx context.Context, input platform.RegisterOrderInput) (*platform.Order, error)
}

// Service turns the current cart contents plus a user-chosen address and
// payment selection into one order-submission request
type Service struct {
	platform Platform
	logger   *logrus.Logger
}

// NewService creates a new checkout service
func NewService(p Platform, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		platform: p,
		logger:   logger,
	}
}

// PlaceOrderRequest carries the page-scoped checkout selection. Exactly one
// of PaymentMethodID and NewPaymentMethod must be set.
type PlaceOrderRequest struct {
	ShippingAddressID int                          `json:"shippingAddressId"`
	PaymentMethodID   int                          `json:"paymentMethodId,omitempty"`
	NewPaymentMethod  *platform.PaymentMethodInput `json:"newPaymentMethod,omitempty"`
	DiscountCode      string                       `json:"discountCode,omitempty"`
}

// PlaceOrderResult reports the registered order and the payment method that
// paid for it
type PlaceOrderResult struct {
	Order           *platform.Order `json:"order"`
	PaymentMethodID int             `json:"paymentMethodId"`
}

// PlaceOrder validates the selection, registers a new payment method when
// one is being entered, submits the order, and clears the cart on success.
// On any remote failure the cart is left untouched so the user can retry.
func (s *Service) PlaceOrder(ctx context.Context, store CartStore, req *PlaceOrderRequest) (*PlaceOrderResult, error) {
	items := store.Items()

	// Local validation first, no remote call on failure
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.ShippingAddressID == 0 {
		return nil, ErrAddressRequired
	}
	if req.PaymentMethodID == 0 && req.NewPaymentMethod == nil {
		return nil, ErrPaymentRequired
	}

	paymentMethodID := req.PaymentMethodID
	newPaymentRegistered := false

	// A newly entered payment method is registered first; only on success
	// does the order submission proceed with the returned id.
	if req.NewPaymentMethod != nil {
		method, err := s.platform.RegisterPaymentMethod(ctx, *req.NewPaymentMethod)
		if err != nil {
			return nil, fmt.Errorf("failed to register payment method: %w", err)
		}
		paymentMethodID = method.PaymentMethodID
		newPaymentRegistered = true
	}

	// Map every cart line to a {productId, quantity} pair. Prices are not
	// sent; authoritative pricing is the platform's responsibility.
	orderItems := make([]platform.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = platform.OrderItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		}
	}

	order, err := s.platform.RegisterOrder(ctx, platform.RegisterOrderInput{
		ShippingAddressID: req.ShippingAddressID,
		PaymentMethodID:   paymentMethodID,
		DiscountCode:      req.DiscountCode,
		OrderItems:        orderItems,
	})
	if err != nil {
		if newPaymentRegistered {
			// No compensating delete exists on the platform; the freshly
			// registered payment method stays behind.
			s.logger.WithField("payment_method_id", paymentMethodID).
				Warn("Order registration failed after payment method registration")
		}
		return nil, fmt.Errorf("failed to register order: %w", err)
	}

	// Success: every cart line transitions to absent
	store.Clear(ctx)

	return &PlaceOrderResult{
		Order:           order,
		PaymentMethodID: paymentMethodID,
	}, nil
}
