// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/domain/checkout"
	"github.com/your-org/storefront-gateway/internal/infrastructure/storage"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// CheckoutHandler handles the order submission endpoint
type CheckoutHandler struct {
	storage         storage.Store
	checkoutService *checkout.Service
	config          *config.Config
	logger          *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(st storage.Store, checkoutService *checkout.Service, cfg *config.Config, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		storage:         st,
		checkoutService: checkoutService,
		config:          cfg,
		logger:          logger,
	}
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID, ok := middleware.GetCartSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart session required",
		})
		return
	}

	key := fmt.Sprintf("%s:%s", h.config.Cart.StorageKey, sessionID)
	store := cart.NewStore(h.storage, key, h.logger)
	if err := store.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), store, &req)
	if err != nil {
		// Local validation failures name the missing precondition; remote
		// failures carry the platform's message. The cart is untouched in
		// both cases.
		switch {
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrAddressRequired),
			errors.Is(err, checkout.ErrPaymentRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			status := http.StatusBadGateway
			var platformErr *platform.Error
			if errors.As(err, &platformErr) {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{
				"error": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    result,
	})
}
