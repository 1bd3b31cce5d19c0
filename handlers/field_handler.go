package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type FieldHandler struct {
	fields *services.FieldService
}

func NewFieldHandler(fields *services.FieldService) *FieldHandler {
	return &FieldHandler{fields: fields}
}

func (h *FieldHandler) CreateField(c *gin.Context) {
	var input dto.CreateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	field, err := h.fields.CreateField(utils.GetClaimsFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(field))
}

func (h *FieldHandler) GetSectionFields(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	fields, err := h.fields.GetSectionFields(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(fields))
}

func (h *FieldHandler) UpdateField(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	field, err := h.fields.UpdateField(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(field))
}

func (h *FieldHandler) DeleteField(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.fields.DeleteField(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Field deleted"))
}

func (h *FieldHandler) DuplicateField(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	field, err := h.fields.DuplicateField(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(field))
}

func (h *FieldHandler) ReorderFields(c *gin.Context) {
	var input dto.ReorderFieldsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.fields.ReorderFields(utils.GetClaimsFromContext(c), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Fields reordered"))
}

// MoveField relocates a field into a sibling section of the same form.
func (h *FieldHandler) MoveField(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.MoveFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	field, err := h.fields.MoveField(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(field))
}
