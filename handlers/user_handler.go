package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/middleware"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

const tokenLifetime = 24 * time.Hour

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.users.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(user))
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.users.Authenticate(input)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := middleware.GenerateToken(user, tokenLifetime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie("token", token, int(tokenLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Success:  true,
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.Message("Logged out"))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(utils.GetClaimsFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(users))
}

func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateUserRoleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.users.UpdateRole(utils.GetClaimsFromContext(c), id, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}
