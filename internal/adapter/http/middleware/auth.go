package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"hopebridge/pkg"

	"github.com/gin-gonic/gin"
)

// RequireBearerToken guards the admin routes. The expected token is injected
// at router assembly rather than read from the environment per request, so
// there is exactly one place credentials enter the system.
func RequireBearerToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			appErr := pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin API is not configured", http.StatusServiceUnavailable)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		auth := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}
