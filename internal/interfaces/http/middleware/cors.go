// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/config"
)

// CORS answers cross-origin requests from the storefront frontends. The cart
// session rides in a cookie, so the matched origin is echoed back and
// credentials stay enabled; a wildcard Allow-Origin would make browsers drop
// the cookie.
func CORS(cfg *config.Config) gin.HandlerFunc {
	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && originAllowed(origin, cfg.Security.CORSAllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originAllowed matches origin against the configured list. An entry of the
// form *.example.com admits any subdomain of example.com.
func originAllowed(origin string, allowed []string) bool {
	for _, entry := range allowed {
		if entry == "*" || entry == origin {
			return true
		}
		if strings.HasPrefix(entry, "*.") {
			if strings.HasSuffix(origin, strings.TrimPrefix(entry, "*.")) {
				return true
			}
		}
	}
	return false
}
