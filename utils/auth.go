package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/types"
)

// GetClaimsFromContext returns nil without error when no credentials were
// presented; callers that require auth pass the nil on to the permission
// resolver, which rejects it.
func GetClaimsFromContext(c *gin.Context) *types.Claims {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil
	}
	return claims
}

var ErrInvalidID = errors.New("invalid id")
