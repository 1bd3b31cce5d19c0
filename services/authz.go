package services

import (
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/types"
)

// AuthzService resolves whether a caller may act on a form-builder resource.
// Sections and fields are authorized by walking up to the owning form and
// applying the form rule there. Permission state is read fresh on every call.
type AuthzService struct {
	repos *repositories.Repos
}

func NewAuthzService(repos *repositories.Repos) *AuthzService {
	return &AuthzService{repos: repos}
}

// RequireElevated gates operations that are not tied to one form, such as the
// all-forms listing. Plain members are rejected outright.
func (s *AuthzService) RequireElevated(claims *types.Claims) error {
	if claims == nil || !models.UserRole(claims.Role).Elevated() {
		return ErrUnauthorized
	}
	return nil
}

// AuthorizeForm loads the form and decides whether the caller may mutate it.
// Admins and organizers act on any form, other elevated roles only on their
// own.
func (s *AuthzService) AuthorizeForm(claims *types.Claims, formID string) (*models.Form, error) {
	if err := s.RequireElevated(claims); err != nil {
		return nil, err
	}
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return nil, err
	}
	role := models.UserRole(claims.Role)
	if role.ManagesAnyForm() || form.CreatedBy == claims.UserID {
		return form, nil
	}
	return nil, ErrUnauthorized
}

func (s *AuthzService) AuthorizeSection(claims *types.Claims, sectionID string) (*models.Section, *models.Form, error) {
	if err := s.RequireElevated(claims); err != nil {
		return nil, nil, err
	}
	section, err := s.repos.Section.FindByID(sectionID)
	if err != nil {
		return nil, nil, err
	}
	form, err := s.AuthorizeForm(claims, section.FormID)
	if err != nil {
		return nil, nil, err
	}
	return section, form, nil
}

func (s *AuthzService) AuthorizeField(claims *types.Claims, fieldID string) (*models.Field, *models.Section, *models.Form, error) {
	if err := s.RequireElevated(claims); err != nil {
		return nil, nil, nil, err
	}
	field, err := s.repos.Field.FindByID(fieldID)
	if err != nil {
		return nil, nil, nil, err
	}
	section, form, err := s.AuthorizeSection(claims, field.SectionID)
	if err != nil {
		return nil, nil, nil, err
	}
	return field, section, form, nil
}
