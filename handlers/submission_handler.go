package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/response"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/utils"
)

type SubmissionHandler struct {
	submissions *services.SubmissionService
}

func NewSubmissionHandler(submissions *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// SubmitForm is public; a logged-in submitter is attached when credentials
// are present.
// @Summary Submit a form
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body dto.SubmitFormDTO true "Submission"
// @Success 201 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /submissions [post]
func (h *SubmissionHandler) SubmitForm(c *gin.Context) {
	var input dto.SubmitFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	submission, err := h.submissions.SubmitForm(utils.GetClaimsFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(submission))
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	submissions, err := h.submissions.ListSubmissions(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(submissions))
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	submission, err := h.submissions.GetSubmission(utils.GetClaimsFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(submission))
}

func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.submissions.DeleteSubmission(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Submission deleted"))
}

// ResetFormSubmissions wipes every submission of a form.
func (h *SubmissionHandler) ResetFormSubmissions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.submissions.ResetFormSubmissions(utils.GetClaimsFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Form submissions reset"))
}
