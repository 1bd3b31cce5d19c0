package handlers

import (
	"github.com/GDG-Vishnu/community-platform/feed"
	"github.com/GDG-Vishnu/community-platform/services"
)

type Handlers struct {
	User       *UserHandler
	Form       *FormHandler
	Section    *SectionHandler
	Field      *FieldHandler
	Submission *SubmissionHandler
	Team       *TeamHandler
	Event      *EventHandler
	Gallery    *GalleryHandler
	Contact    *ContactHandler
	WS         *WSHandler
}

func New(svc *services.Services, broker *feed.Broker) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Form:       NewFormHandler(svc.Form, svc.Analytics),
		Section:    NewSectionHandler(svc.Section),
		Field:      NewFieldHandler(svc.Field),
		Submission: NewSubmissionHandler(svc.Submission),
		Team:       NewTeamHandler(svc.Team),
		Event:      NewEventHandler(svc.Event),
		Gallery:    NewGalleryHandler(svc.Gallery),
		Contact:    NewContactHandler(svc.Contact),
		WS:         NewWSHandler(broker, svc.Authz),
	}
}
