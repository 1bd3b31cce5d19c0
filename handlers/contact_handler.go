package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type ContactHandler struct {
	contact *services.ContactService
}

func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var input dto.CreateContactMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	message, err := h.contact.CreateMessage(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(message))
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	unresolvedOnly := c.Query("unresolved") == "true"
	messages, err := h.contact.ListMessages(utils.GetClaimsFromContext(c), unresolvedOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(messages))
}

func (h *ContactHandler) ResolveMessage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.ResolveContactMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	message, err := h.contact.SetResolved(utils.GetClaimsFromContext(c), id, *input.Resolved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(message))
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.contact.DeleteMessage(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Message deleted"))
}
