// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// AuthHandler proxies authentication to the platform API
type AuthHandler struct {
	platform *platform.Client
	config   *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(p *platform.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		platform: p,
		config:   cfg,
	}
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.platform.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusBadGateway
		var platformErr *platform.Error
		if errors.As(err, &platformErr) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    result,
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req platform.RegisterUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.platform.RegisterUser(c.Request.Context(), req); err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
	})
}

// RegisterCustomer handles POST /auth/register/customer
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req platform.RegisterCustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.platform.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer registered successfully",
		"data":    profile,
	})
}

// RegisterSupplier handles POST /auth/register/supplier
func (h *AuthHandler) RegisterSupplier(c *gin.Context) {
	var req platform.RegisterSupplierInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.platform.RegisterSupplier(c.Request.Context(), req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Supplier registered successfully",
		"data":    profile,
	})
}

// respondPlatformError maps a platform failure to an HTTP response,
// preserving the remote message
func respondPlatformError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	var platformErr *platform.Error
	if errors.As(err, &platformErr) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
