package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type FormHandler struct {
	forms     *services.FormService
	analytics *services.AnalyticsService
}

func NewFormHandler(forms *services.FormService, analytics *services.AnalyticsService) *FormHandler {
	return &FormHandler{forms: forms, analytics: analytics}
}

// CreateForm creates a form with its initial section.
// @Summary Create form
// @Tags forms
// @Accept json
// @Produce json
// @Param input body dto.CreateFormDTO true "Form"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	form, err := h.forms.CreateForm(utils.GetClaimsFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(form))
}

func (h *FormHandler) GetAllForms(c *gin.Context) {
	forms, err := h.forms.GetAllForms(utils.GetClaimsFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(forms))
}

func (h *FormHandler) GetFormByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	form, err := h.forms.GetFormByID(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(form))
}

// GetPublicForm serves an active form's tree for the fill-out page.
func (h *FormHandler) GetPublicForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	form, err := h.forms.GetPublicForm(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(form))
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	form, err := h.forms.UpdateForm(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(form))
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.forms.DeleteForm(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Form deleted"))
}

// PublishForm toggles a form live after the structure validator passes.
// @Summary Publish or unpublish form
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body dto.PublishFormDTO true "Target state"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse "Structure issues"
// @Router /forms/{id}/publish [put]
func (h *FormHandler) PublishForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.PublishFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	issues, err := h.forms.PublishForm(utils.GetClaimsFromContext(c), id, *input.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(issues) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.Invalid("Form structure is incomplete", issues))
		return
	}
	c.JSON(http.StatusOK, response.Message("Form publish state updated"))
}

func (h *FormHandler) ValidateFormStructure(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	issues, err := h.forms.ValidateFormStructure(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(issues) > 0 {
		c.JSON(http.StatusOK, response.Invalid("Form structure is incomplete", issues))
		return
	}
	c.JSON(http.StatusOK, response.Message("Form structure is valid"))
}

func (h *FormHandler) CloneForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.CloneFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	clone, err := h.forms.CloneForm(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(clone))
}

func (h *FormHandler) GetFormAnalytics(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	analytics, err := h.analytics.GetFormAnalytics(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(analytics))
}
