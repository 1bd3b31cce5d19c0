package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/types"
)

var jwtKey []byte

func Init() {
	jwtKey = []byte(config.JwtSecret)
}

func GenerateToken(user *models.User, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1], true
		}
		return "", false
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie, true
	}
	return "", false
}

// JWTAuthMiddleware guards the admin surface. A request carrying no
// credentials at all is redirected to the login page; a bad token is a plain
// 401.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := extractToken(c)
		if !ok {
			c.Redirect(http.StatusFound, config.LoginURL)
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuth parses credentials when present but never blocks. Public
// submission endpoints use it to attach a submitter identity.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := extractToken(c); ok {
			if claims, err := ParseToken(tokenStr); err == nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}
