package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/types"
)

type FormService struct {
	repos    *repositories.Repos
	authz    *AuthzService
	notifier revalidate.Notifier
}

func NewFormService(repos *repositories.Repos, authz *AuthzService, notifier revalidate.Notifier) *FormService {
	return &FormService{repos: repos, authz: authz, notifier: notifier}
}

// formPages lists the frontend paths that render a given form.
func formPages(formID string) []string {
	return []string{"/forms", "/forms/" + formID, "/admin/forms/" + formID}
}

// CreateForm creates the form together with its initial section so the
// at-least-one-section invariant holds from birth.
func (s *FormService) CreateForm(claims *types.Claims, input dto.CreateFormDTO) (*models.Form, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}

	title := "Section 1"
	form := &models.Form{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedBy:   claims.UserID,
		Sections: []models.Section{
			{Title: &title, Order: 0},
		},
	}
	if err := s.repos.Form.Create(form); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(form.ID)...)
	return form, nil
}

func (s *FormService) GetAllForms(claims *types.Claims) ([]models.Form, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	return s.repos.Form.FindAll()
}

func (s *FormService) GetFormByID(claims *types.Claims, formID string) (*models.Form, error) {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return nil, err
	}
	return s.repos.Form.FindTree(formID)
}

// GetPublicForm serves the fill-out page. Only active forms are visible
// without credentials.
func (s *FormService) GetPublicForm(formID string) (*models.Form, error) {
	form, err := s.repos.Form.FindTree(formID)
	if err != nil {
		return nil, err
	}
	if !form.IsActive {
		return nil, ErrFormInactive
	}
	return form, nil
}

func (s *FormService) UpdateForm(claims *types.Claims, formID string, input dto.UpdateFormDTO) (*models.Form, error) {
	form, err := s.authz.AuthorizeForm(claims, formID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		form.Name = *input.Name
	}
	if input.Description != nil {
		form.Description = input.Description
	}
	if input.ImageURL != nil {
		form.ImageURL = input.ImageURL
	}
	if err := s.repos.Form.Update(form); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(formID)...)
	return form, nil
}

func (s *FormService) DeleteForm(claims *types.Claims, formID string) error {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return err
	}
	if err := s.repos.Form.Delete(formID); err != nil {
		return err
	}
	s.notifier.Notify(formPages(formID)...)
	return nil
}

// PublishForm toggles the active flag. Activation is gated on the structure
// validator; the full issue list comes back with no state change.
func (s *FormService) PublishForm(claims *types.Claims, formID string, isActive bool) ([]string, error) {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return nil, err
	}
	if isActive {
		tree, err := s.repos.Form.FindTree(formID)
		if err != nil {
			return nil, err
		}
		if issues := ValidateFormTree(tree); len(issues) > 0 {
			return issues, nil
		}
	}
	if err := s.repos.Form.SetActive(formID, isActive); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(formID)...)
	return nil, nil
}

func (s *FormService) ValidateFormStructure(claims *types.Claims, formID string) ([]string, error) {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return nil, err
	}
	tree, err := s.repos.Form.FindTree(formID)
	if err != nil {
		return nil, err
	}
	return ValidateFormTree(tree), nil
}

// CloneForm deep-copies the form tree. Fresh IDs are assigned up front and an
// explicit old-field-ID to new-field-ID map carries responses over when
// submissions are included; a response whose field no longer exists is
// dropped.
func (s *FormService) CloneForm(claims *types.Claims, formID string, input dto.CloneFormDTO) (*models.Form, error) {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return nil, err
	}
	source, err := s.repos.Form.FindTree(formID)
	if err != nil {
		return nil, err
	}

	name := source.Name + " (copy)"
	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		name = *input.Title
	}

	clone := &models.Form{
		ID:          uuid.NewString(),
		Name:        name,
		Description: source.Description,
		ImageURL:    source.ImageURL,
		CreatedBy:   claims.UserID,
	}

	fieldIDMap := make(map[string]string)
	for _, section := range source.Sections {
		newSection := models.Section{
			ID:     uuid.NewString(),
			FormID: clone.ID,
			Title:  section.Title,
			Order:  section.Order,
		}
		for _, field := range section.Fields {
			newField := models.Field{
				ID:           uuid.NewString(),
				SectionID:    newSection.ID,
				Label:        field.Label,
				Placeholder:  field.Placeholder,
				Type:         field.Type,
				Required:     field.Required,
				Order:        field.Order,
				Options:      field.Options,
				DefaultValue: field.DefaultValue,
				Validation:   field.Validation,
				Styling:      field.Styling,
				Logic:        field.Logic,
			}
			fieldIDMap[field.ID] = newField.ID
			newSection.Fields = append(newSection.Fields, newField)
		}
		clone.Sections = append(clone.Sections, newSection)
	}

	if err := s.repos.Form.Create(clone); err != nil {
		return nil, err
	}

	if input.IncludeSubmissions {
		if err := s.cloneSubmissions(formID, clone.ID, fieldIDMap); err != nil {
			return nil, err
		}
	}

	s.notifier.Notify(formPages(clone.ID)...)
	return clone, nil
}

func (s *FormService) cloneSubmissions(sourceFormID, cloneFormID string, fieldIDMap map[string]string) error {
	submissions, err := s.repos.Submission.ListByForm(sourceFormID)
	if err != nil {
		return err
	}
	copies := make([]models.FormSubmission, 0, len(submissions))
	for _, sub := range submissions {
		copied := models.FormSubmission{
			ID:          uuid.NewString(),
			FormID:      cloneFormID,
			SubmittedBy: sub.SubmittedBy,
			SubmittedAt: sub.SubmittedAt,
		}
		for _, resp := range sub.Responses {
			newFieldID, ok := fieldIDMap[resp.FieldID]
			if !ok {
				continue
			}
			copied.Responses = append(copied.Responses, models.FieldResponse{
				ID:           uuid.NewString(),
				SubmissionID: copied.ID,
				FieldID:      newFieldID,
				Value:        resp.Value,
			})
		}
		copies = append(copies, copied)
	}
	return s.repos.Submission.CreateBatch(copies)
}
