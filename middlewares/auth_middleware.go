package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// ContextEmailKey holds the verified caller identity for downstream
// handlers.
const ContextEmailKey = "email"

// AuthMiddleware rejects requests without a valid, unrevoked session
// token and records the caller's email on the context.
func AuthMiddleware(tokens utils.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			slog.Error("token store lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// RequireOwnEmail enforces the request-level ownership rule: the email
// embedded in the session must equal the email the route asks about,
// whether it arrives as a path parameter or a query parameter.
func RequireOwnEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Param("email")
		if requested == "" {
			requested = c.Query("email")
		}

		caller := c.GetString(ContextEmailKey)
		if requested == "" || caller == "" || caller != requested {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}
