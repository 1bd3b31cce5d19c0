package services

import (
	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/types"
)

var eventPages = []string{"/", "/events"}

type EventService struct {
	repos    *repositories.Repos
	authz    *AuthzService
	notifier revalidate.Notifier
}

func NewEventService(repos *repositories.Repos, authz *AuthzService, notifier revalidate.Notifier) *EventService {
	return &EventService{repos: repos, authz: authz, notifier: notifier}
}

func (s *EventService) CreateEvent(claims *types.Claims, input dto.CreateEventDTO) (*models.Event, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	if input.RegistrationFormID != nil {
		if _, err := s.repos.Form.FindByID(*input.RegistrationFormID); err != nil {
			return nil, err
		}
	}
	event := &models.Event{
		Title:              input.Title,
		Description:        input.Description,
		StartsAt:           input.StartsAt,
		Venue:              input.Venue,
		ImageURL:           input.ImageURL,
		RegistrationFormID: input.RegistrationFormID,
	}
	if input.Published != nil {
		event.Published = *input.Published
	}
	if err := s.repos.Event.Create(event); err != nil {
		return nil, err
	}
	s.notifier.Notify(eventPages...)
	return event, nil
}

// ListEvents shows drafts to elevated callers only.
func (s *EventService) ListEvents(claims *types.Claims) ([]models.Event, error) {
	publishedOnly := s.authz.RequireElevated(claims) != nil
	return s.repos.Event.List(publishedOnly)
}

func (s *EventService) GetEvent(claims *types.Claims, eventID string) (*models.Event, error) {
	event, err := s.repos.Event.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if !event.Published {
		if err := s.authz.RequireElevated(claims); err != nil {
			return nil, err
		}
	}
	return event, nil
}

func (s *EventService) UpdateEvent(claims *types.Claims, eventID string, input dto.UpdateEventDTO) (*models.Event, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	event, err := s.repos.Event.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if input.RegistrationFormID != nil {
		if _, err := s.repos.Form.FindByID(*input.RegistrationFormID); err != nil {
			return nil, err
		}
		event.RegistrationFormID = input.RegistrationFormID
	}
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.Venue != nil {
		event.Venue = input.Venue
	}
	if input.ImageURL != nil {
		event.ImageURL = input.ImageURL
	}
	if input.Published != nil {
		event.Published = *input.Published
	}
	if err := s.repos.Event.Update(event); err != nil {
		return nil, err
	}
	s.notifier.Notify(append(eventPages, "/events/"+eventID)...)
	return event, nil
}

func (s *EventService) DeleteEvent(claims *types.Claims, eventID string) error {
	if err := s.authz.RequireElevated(claims); err != nil {
		return err
	}
	if _, err := s.repos.Event.FindByID(eventID); err != nil {
		return err
	}
	if err := s.repos.Event.Delete(eventID); err != nil {
		return err
	}
	s.notifier.Notify(eventPages...)
	return nil
}
