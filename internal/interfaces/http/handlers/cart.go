// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/infrastructure/storage"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	storage        storage.Store
	catalogService *catalog.Service
	config         *config.Config
	logger         *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(st storage.Store, catalogService *catalog.Service, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		storage:        st,
		catalogService: catalogService,
		config:         cfg,
		logger:         logger,
	}
}

// CartView is the cart with its derived aggregates
type CartView struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice float64         `json:"total_price"`
}

// AddToCartRequest identifies the catalog product to add
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// sessionStore builds the session's cart store, hydrated from persistence
func (h *CartHandler) sessionStore(c *gin.Context) (*cart.Store, error) {
	sessionID, ok := middleware.GetCartSessionID(c)
	if !ok {
		return nil, fmt.Errorf("missing cart session")
	}

	key := fmt.Sprintf("%s:%s", h.config.Cart.StorageKey, sessionID)
	store := cart.NewStore(h.storage, key, h.logger)
	if err := store.Load(c.Request.Context()); err != nil {
		return nil, err
	}
	return store, nil
}

func cartView(store *cart.Store) CartView {
	items := store.Items()
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartView{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store, err := h.sessionStore(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cartView(store),
	})
}

// AddToCart handles POST /cart/items. The product reference is copied from
// the catalog at add time, so later catalog changes do not alter the line.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// An unknown product surfaces the platform's rejection; an unreachable
	// platform is a gateway failure, not a bad request.
	product, err := h.catalogService.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		respondPlatformError(c, err)
		return
	}

	store, err := h.sessionStore(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	store.Add(c.Request.Context(), catalog.AsCartProduct(product))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    cartView(store),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id. It decrements the line,
// deleting it entirely at quantity 1; an absent id is not an error.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	store, err := h.sessionStore(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	store.Remove(c.Request.Context(), productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    cartView(store),
	})
}

// IncreaseQuantity handles POST /cart/items/:id/increase
func (h *CartHandler) IncreaseQuantity(c *gin.Context) {
	h.adjustQuantity(c, func(store *cart.Store, productID int) {
		store.IncreaseQuantity(c.Request.Context(), productID)
	})
}

// DecreaseQuantity handles POST /cart/items/:id/decrease
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	h.adjustQuantity(c, func(store *cart.Store, productID int) {
		store.DecreaseQuantity(c.Request.Context(), productID)
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, err := h.sessionStore(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    cartView(store),
	})
}

func (h *CartHandler) adjustQuantity(c *gin.Context, adjust func(store *cart.Store, productID int)) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	store, err := h.sessionStore(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	adjust(store, productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartView(store),
	})
}
