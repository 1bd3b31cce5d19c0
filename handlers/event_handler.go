package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input dto.CreateEventDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	event, err := h.events.CreateEvent(utils.GetClaimsFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(event))
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.ListEvents(utils.GetClaimsFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(events))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	event, err := h.events.GetEvent(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(event))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateEventDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	event, err := h.events.UpdateEvent(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(event))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.events.DeleteEvent(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Event deleted"))
}
