package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateTeamMemberDTO struct {
	Name      string         `json:"name" binding:"required"`
	RoleTitle string         `json:"role_title" binding:"required"`
	PhotoURL  *string        `json:"photo_url,omitempty"`
	Socials   datatypes.JSON `json:"socials,omitempty"`
	Order     *int           `json:"order,omitempty"`
	Active    *bool          `json:"active,omitempty"`
}

type UpdateTeamMemberDTO struct {
	Name      *string        `json:"name,omitempty"`
	RoleTitle *string        `json:"role_title,omitempty"`
	PhotoURL  *string        `json:"photo_url,omitempty"`
	Socials   datatypes.JSON `json:"socials,omitempty"`
	Order     *int           `json:"order,omitempty"`
	Active    *bool          `json:"active,omitempty"`
}

type ReorderTeamDTO struct {
	Members []OrderPairDTO `json:"members" binding:"required,min=1,dive"`
}

type CreateEventDTO struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description"`
	StartsAt           time.Time `json:"starts_at" binding:"required"`
	Venue              *string   `json:"venue,omitempty"`
	ImageURL           *string   `json:"image_url,omitempty"`
	RegistrationFormID *string   `json:"registration_form_id,omitempty" binding:"omitempty,uuid"`
	Published          *bool     `json:"published,omitempty"`
}

type UpdateEventDTO struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	StartsAt           *time.Time `json:"starts_at,omitempty"`
	Venue              *string    `json:"venue,omitempty"`
	ImageURL           *string    `json:"image_url,omitempty"`
	RegistrationFormID *string    `json:"registration_form_id,omitempty" binding:"omitempty,uuid"`
	Published          *bool      `json:"published,omitempty"`
}

type UpdateGalleryImageDTO struct {
	Title *string `json:"title,omitempty"`
	Order *int    `json:"order,omitempty"`
}

type ReorderGalleryDTO struct {
	Images []OrderPairDTO `json:"images" binding:"required,min=1,dive"`
}

type CreateContactMessageDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type ResolveContactMessageDTO struct {
	Resolved *bool `json:"resolved" binding:"required"`
}
