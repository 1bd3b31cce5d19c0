package services

import (
	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/types"
)

type ContactService struct {
	repos *repositories.Repos
	authz *AuthzService
}

func NewContactService(repos *repositories.Repos, authz *AuthzService) *ContactService {
	return &ContactService{repos: repos, authz: authz}
}

// CreateMessage is the public contact-page endpoint; no credentials needed.
func (s *ContactService) CreateMessage(input dto.CreateContactMessageDTO) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.repos.Contact.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ContactService) ListMessages(claims *types.Claims, unresolvedOnly bool) ([]models.ContactMessage, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	return s.repos.Contact.List(unresolvedOnly)
}

func (s *ContactService) SetResolved(claims *types.Claims, messageID string, resolved bool) (*models.ContactMessage, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	message, err := s.repos.Contact.FindByID(messageID)
	if err != nil {
		return nil, err
	}
	message.Resolved = resolved
	if err := s.repos.Contact.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ContactService) DeleteMessage(claims *types.Claims, messageID string) error {
	if err := s.authz.RequireElevated(claims); err != nil {
		return err
	}
	if _, err := s.repos.Contact.FindByID(messageID); err != nil {
		return err
	}
	return s.repos.Contact.Delete(messageID)
}
