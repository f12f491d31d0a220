package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Gin context keys for the authenticated caller.
const (
	UserIDKey      = "userID"
	TokenClaimsKey = "jwtClaims"
)

// Auth verifies the bearer token issued by the external auth service and
// puts the caller's user id into the request context. Every storefront
// route is user-scoped, so requests without a valid token are rejected.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		uid, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing user id"})
			return
		}

		c.Set(TokenClaimsKey, claims)
		c.Set(UserIDKey, uint(uid))

		// Downstream logs pick the user id up via logger.FromCtx.
		c.Request = c.Request.WithContext(
			logger.WithUserID(c.Request.Context(), uint(uid)),
		)
		c.Next()
	}
}

// UserID retrieves the authenticated user id placed by Auth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
