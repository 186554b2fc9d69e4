// internal/interfaces/http/middleware/cart_session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-gateway/internal/config"
)

// CartSession ensures every request carries a cart session id. The id names
// the storage key the session's cart persists under, so it must survive
// reloads: it lives in a long-lived cookie and is minted only when absent.
func CartSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Cart.SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(
				cfg.Cart.SessionCookie,
				sessionID,
				int(cfg.Cart.SessionTTL.Seconds()),
				"/",
				"",
				false,
				true,
			)
		}

		c.Set("cart_session_id", sessionID)
		c.Next()
	}
}

// GetCartSessionID extracts the cart session id from gin context
func GetCartSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("cart_session_id")
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok && id != ""
}

// RequireCartSession rejects requests that somehow lack a session id
func RequireCartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCartSessionID(c); !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart session required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
