package services

import (
	"github.com/GDG-Vishnu/community-platform/feed"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/storage"
)

type Services struct {
	Authz      *AuthzService
	User       *UserService
	Form       *FormService
	Section    *SectionService
	Field      *FieldService
	Submission *SubmissionService
	Analytics  *AnalyticsService
	Team       *TeamService
	Event      *EventService
	Gallery    *GalleryService
	Contact    *ContactService
}

func New(repos *repositories.Repos, store storage.ObjectStore, notifier revalidate.Notifier, broker *feed.Broker) *Services {
	authz := NewAuthzService(repos)
	return &Services{
		Authz:      authz,
		User:       NewUserService(repos, authz),
		Form:       NewFormService(repos, authz, notifier),
		Section:    NewSectionService(repos, authz, notifier),
		Field:      NewFieldService(repos, authz, notifier),
		Submission: NewSubmissionService(repos, authz, broker),
		Analytics:  NewAnalyticsService(repos, authz),
		Team:       NewTeamService(repos, authz, notifier),
		Event:      NewEventService(repos, authz, notifier),
		Gallery:    NewGalleryService(repos, authz, store, notifier),
		Contact:    NewContactService(repos, authz),
	}
}
