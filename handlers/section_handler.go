package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type SectionHandler struct {
	sections *services.SectionService
}

func NewSectionHandler(sections *services.SectionService) *SectionHandler {
	return &SectionHandler{sections: sections}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var input dto.CreateSectionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	section, err := h.sections.CreateSection(utils.GetClaimsFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(section))
}

func (h *SectionHandler) GetSection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	section, err := h.sections.GetSection(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(section))
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateSectionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	section, err := h.sections.UpdateSection(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(section))
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.sections.DeleteSection(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Section deleted"))
}

// ReorderSections applies a bulk order update; any foreign section ID in the
// list rejects the whole request.
func (h *SectionHandler) ReorderSections(c *gin.Context) {
	var input dto.ReorderSectionsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.sections.ReorderSections(utils.GetClaimsFromContext(c), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Sections reordered"))
}

func (h *SectionHandler) DuplicateSection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	section, err := h.sections.DuplicateSection(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(section))
}
