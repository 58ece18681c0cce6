package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/pkg/jwt"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyRequest(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Token expired", err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "Invalid token", err)
			}
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth verifies a token when present but lets anonymous requests through
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		if claims, err := verifyRequest(c, jwtManager); err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

func verifyRequest(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrInvalidToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrInvalidToken
	}
	return jwtManager.VerifyToken(parts[1])
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set("userID", claims.UserID)
	c.Set("nickname", claims.Nickname)
	c.Set("role", claims.Role)
}

// GetUserID extracts the authenticated user ID from context. 0 means anonymous.
func GetUserID(c *gin.Context) uint64 {
	raw, exists := c.Get("userID")
	if !exists {
		return 0
	}
	str, ok := raw.(string)
	if !ok {
		return 0
	}
	id, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// GetUserRole extracts the authenticated user's role from context
func GetUserRole(c *gin.Context) domain.UserRole {
	raw, exists := c.Get("role")
	if !exists {
		return ""
	}
	if str, ok := raw.(string); ok {
		return domain.UserRole(str)
	}
	return ""
}

// GetNickname extracts nickname from context
func GetNickname(c *gin.Context) string {
	raw, exists := c.Get("nickname")
	if !exists {
		return ""
	}
	if str, ok := raw.(string); ok {
		return str
	}
	return ""
}
