// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/account"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/domain/checkout"
	"github.com/your-org/storefront-gateway/internal/domain/supplier"
	"github.com/your-org/storefront-gateway/internal/infrastructure/storage"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, client *platform.Client, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(client, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)

		// Profile registration requires the freshly issued token
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/register/customer", authHandler.RegisterCustomer)
			protected.POST("/register/supplier", authHandler.RegisterSupplier)
		}
	}
}

// SetupCatalogRoutes sets up product browsing routes
func SetupCatalogRoutes(rg *gin.RouterGroup, client *platform.Client, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(catalog.NewService(client))

	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/category/:id", catalogHandler.GetProductsByCategory)
		products.GET("/:id/reviews", catalogHandler.GetProductReviews)
	}

	rg.GET("/categories", catalogHandler.GetCategories)
}

// SetupCartRoutes sets up cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, st storage.Store, client *platform.Client, cfg *config.Config, logger *logrus.Logger) {
	cartHandler := handlers.NewCartHandler(st, catalog.NewService(client), cfg, logger)

	// The cart is client-owned state: it works for guests and authenticated
	// users alike, keyed by the cart session cookie.
	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	cart.Use(middleware.CartSession(cfg))
	cart.Use(middleware.RequireCartSession())
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.POST("/items/:id/increase", cartHandler.IncreaseQuantity)
		cart.POST("/items/:id/decrease", cartHandler.DecreaseQuantity)
		cart.DELETE("", cartHandler.ClearCart)
	}

	checkoutHandler := handlers.NewCheckoutHandler(st, checkout.NewService(client, logger), cfg, logger)

	co := rg.Group("/checkout")
	co.Use(middleware.AuthMiddleware(cfg))
	co.Use(middleware.RequireRole("customer"))
	co.Use(middleware.CartSession(cfg))
	co.Use(middleware.RequireCartSession())
	{
		co.POST("", checkoutHandler.PlaceOrder)
	}
}

// SetupAccountRoutes sets up address and payment-method routes
func SetupAccountRoutes(rg *gin.RouterGroup, client *platform.Client, cfg *config.Config) {
	accountHandler := handlers.NewAccountHandler(account.NewService(client))

	addresses := rg.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(cfg))
	addresses.Use(middleware.RequireRole("customer"))
	{
		addresses.GET("", accountHandler.GetAddresses)
		addresses.POST("", accountHandler.CreateAddress)
		addresses.PUT("/:id", accountHandler.UpdateAddress)
		addresses.DELETE("/:id", accountHandler.DeleteAddress)
	}

	accountGroup := rg.Group("/account")
	accountGroup.Use(middleware.AuthMiddleware(cfg))
	accountGroup.Use(middleware.RequireRole("customer"))
	{
		accountGroup.GET("/profile", accountHandler.GetProfile)
		accountGroup.GET("/payment-methods", accountHandler.GetPaymentMethods)
		accountGroup.GET("/orders", accountHandler.GetOrders)
		accountGroup.GET("/orders/:id/items", accountHandler.GetOrderItems)
		accountGroup.POST("/verify-email", accountHandler.SendEmailVerification)
	}

	reviews := rg.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware(cfg))
	reviews.Use(middleware.RequireRole("customer"))
	{
		reviews.POST("", accountHandler.CreateReview)
	}
}

// SetupSupplierRoutes sets up the supplier console routes
func SetupSupplierRoutes(rg *gin.RouterGroup, client *platform.Client, cfg *config.Config) {
	supplierHandler := handlers.NewSupplierHandler(supplier.NewService(client))

	sup := rg.Group("/supplier")
	sup.Use(middleware.AuthMiddleware(cfg))
	sup.Use(middleware.RequireRole("supplier"))
	{
		sup.GET("/profile", supplierHandler.GetProfile)
		sup.GET("/products", supplierHandler.GetProducts)
		sup.POST("/products", supplierHandler.CreateProduct)
		sup.PUT("/products/:id", supplierHandler.UpdateProduct)
		sup.DELETE("/products/:id", supplierHandler.DeleteProduct)
	}
}
