// internal/interfaces/http/handlers/account.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/domain/account"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// AccountHandler handles address and payment-method endpoints
type AccountHandler struct {
	accountService *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *account.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetAddresses handles GET /addresses
func (h *AccountHandler) GetAddresses(c *gin.Context) {
	addresses, err := h.accountService.ListAddresses(c.Request.Context())
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": addresses,
	})
}

// CreateAddress handles POST /addresses
func (h *AccountHandler) CreateAddress(c *gin.Context) {
	var req platform.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.accountService.CreateAddress(c.Request.Context(), req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address created successfully",
		"data":    address,
	})
}

// UpdateAddress handles PUT /addresses/:id
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address ID",
		})
		return
	}

	addressTypeID, err := strconv.Atoi(c.DefaultQuery("address_type_id", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address type ID",
		})
		return
	}

	var req platform.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.accountService.UpdateAddress(c.Request.Context(), addressID, addressTypeID, req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
		"data":    address,
	})
}

// DeleteAddress handles DELETE /addresses/:id
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address ID",
		})
		return
	}

	if err := h.accountService.DeleteAddress(c.Request.Context(), addressID); err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted successfully",
	})
}

// GetPaymentMethods handles GET /payment-methods
func (h *AccountHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.accountService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": methods,
	})
}

// GetOrders handles GET /account/orders
func (h *AccountHandler) GetOrders(c *gin.Context) {
	orders, err := h.accountService.ListOrders(c.Request.Context())
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": orders,
	})
}

// GetOrderItems handles GET /account/orders/:id/items
func (h *AccountHandler) GetOrderItems(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	items, err := h.accountService.ListOrderItems(c.Request.Context(), orderID)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": items,
	})
}

// CreateReview handles POST /reviews
func (h *AccountHandler) CreateReview(c *gin.Context) {
	var req platform.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	review, err := h.accountService.CreateReview(c.Request.Context(), req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review registered successfully",
		"data":    review,
	})
}

// SendEmailVerification handles POST /account/verify-email
func (h *AccountHandler) SendEmailVerification(c *gin.Context) {
	if err := h.accountService.SendEmailVerification(c.Request.Context()); err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification email sent",
	})
}

// GetProfile handles GET /account/profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.accountService.GetProfile(c.Request.Context())
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": profile,
	})
}
