package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseIDParam validates a route parameter against the UUID format before it
// reaches any query.
func ParseIDParam(c *gin.Context, param string) (string, error) {
	raw := c.Param(param)
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return raw, nil
}
