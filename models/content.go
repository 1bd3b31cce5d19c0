package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeamMember is one entry on the public team roster.
type TeamMember struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	RoleTitle string         `gorm:"size:100;not null" json:"role_title"`
	PhotoURL  *string        `gorm:"size:500" json:"photo_url,omitempty"`
	Socials   datatypes.JSON `json:"socials,omitempty"`
	Order     int            `gorm:"column:display_order;not null;default:0" json:"order"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Event is a marketing-site event. RegistrationFormID optionally links the
// event to a builder form used for sign-ups.
type Event struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title              string    `gorm:"size:200;not null" json:"title"`
	Description        string    `json:"description"`
	StartsAt           time.Time `gorm:"not null;index" json:"starts_at"`
	Venue              *string   `gorm:"size:200" json:"venue,omitempty"`
	ImageURL           *string   `gorm:"size:500" json:"image_url,omitempty"`
	RegistrationFormID *string   `gorm:"type:uuid" json:"registration_form_id,omitempty"`
	Published          bool      `gorm:"default:false" json:"published"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// GalleryImage is a stored media object plus its display metadata.
type GalleryImage struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title      *string   `gorm:"size:200" json:"title,omitempty"`
	ObjectKey  string    `gorm:"size:500;not null" json:"object_key"`
	URL        string    `gorm:"size:500;not null" json:"url"`
	UploadedBy string    `gorm:"type:uuid;not null" json:"uploaded_by"`
	Order      int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// ContactMessage is a public contact-page submission.
type ContactMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	Resolved  bool      `gorm:"default:false" json:"resolved"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
