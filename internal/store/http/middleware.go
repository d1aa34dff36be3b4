package http

import (
	"net/http"
	"strings"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName   = "Authorization"
	claimsContextKey = "auth-claims"
)

func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser) gin.HandlerFunc {
	secret := []byte(secretKey)

	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := requestClaims(c)
		if claims == nil || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": "admin access required"})
			return
		}

		c.Next()
	}
}

func requestClaims(c *gin.Context) *jwt.Claims {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}

	claims, ok := value.(*jwt.Claims)
	if !ok {
		return nil
	}

	return claims
}

func requestUserId(c *gin.Context) int {
	claims := requestClaims(c)
	if claims == nil {
		return 0
	}

	return claims.UserID
}
