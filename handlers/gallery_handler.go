package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type GalleryHandler struct {
	gallery *services.GalleryService
}

func NewGalleryHandler(gallery *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// UploadImage accepts a multipart image plus an optional title field.
// @Summary Upload gallery image
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param title formData string false "Title"
// @Success 201 {object} response.SuccessResponse
// @Router /gallery [post]
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		bindError(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	var title *string
	if t := c.PostForm("title"); t != "" {
		title = &t
	}

	image, err := h.gallery.UploadImage(
		c.Request.Context(),
		utils.GetClaimsFromContext(c),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
		title,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(image))
}

func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.gallery.ListImages()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(images))
}

func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input dto.UpdateGalleryImageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	image, err := h.gallery.UpdateImage(utils.GetClaimsFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(image))
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.gallery.DeleteImage(c.Request.Context(), utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Image deleted"))
}

func (h *GalleryHandler) ReorderImages(c *gin.Context) {
	var input dto.ReorderGalleryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.gallery.ReorderImages(utils.GetClaimsFromContext(c), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Gallery reordered"))
}
