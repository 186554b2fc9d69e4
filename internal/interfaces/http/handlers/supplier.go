// internal/interfaces/http/handlers/supplier.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/domain/supplier"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// SupplierHandler handles the supplier product-management console endpoints
type SupplierHandler struct {
	supplierService *supplier.Service
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *supplier.Service) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// GetProfile handles GET /supplier/profile
func (h *SupplierHandler) GetProfile(c *gin.Context) {
	profile, err := h.supplierService.GetProfile(c.Request.Context())
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": profile,
	})
}

// GetProducts handles GET /supplier/products
func (h *SupplierHandler) GetProducts(c *gin.Context) {
	page, pageSize := paginationParams(c)

	result, err := h.supplierService.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result,
	})
}

// CreateProduct handles POST /supplier/products
func (h *SupplierHandler) CreateProduct(c *gin.Context) {
	var req platform.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.supplierService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product registered successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /supplier/products/:id
func (h *SupplierHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req platform.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.supplierService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /supplier/products/:id
func (h *SupplierHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if err := h.supplierService.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondPlatformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
