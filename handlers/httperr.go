package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

// respondError translates service errors into the response envelope. The
// authorization message stays generic on purpose.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, response.Err("Unauthorized"))
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.Err("Not found"))
	case errors.Is(err, services.ErrLastSection),
		errors.Is(err, services.ErrScopeMismatch),
		errors.Is(err, services.ErrFormMismatch),
		errors.Is(err, services.ErrFieldNotInForm),
		errors.Is(err, services.ErrFormInactive):
		c.JSON(http.StatusConflict, response.Err(err.Error()))
	case errors.Is(err, services.ErrInvalidFieldType),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, utils.ErrInvalidID):
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Err(err.Error()))
	default:
		logx.Errorf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, response.Err("Something went wrong"))
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Err(err.Error()))
}
