package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type TeamHandler struct {
	team *services.TeamService
}

func NewTeamHandler(team *services.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

func (h *TeamHandler) CreateMember(c *gin.Context) {
	var input dto.CreateTeamMemberDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	member, err := h.team.CreateMember(utils.GetClaimsFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(member))
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.team.ListMembers(utils.GetClaimsFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(members))
}

func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateTeamMemberDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	member, err := h.team.UpdateMember(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(member))
}

func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.team.DeleteMember(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Team member removed"))
}

func (h *TeamHandler) ReorderMembers(c *gin.Context) {
	var input dto.ReorderTeamDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.team.ReorderMembers(utils.GetClaimsFromContext(c), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Team reordered"))
}
