package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/harramos25/GlamBook/internal/config"
	"github.com/harramos25/GlamBook/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "invalid authorization header")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "invalid token claims")
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "invalid token payload")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			httperr.Forbidden(c, "forbidden", "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
