package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormSubmission is one end-user fill-out of a form.
type FormSubmission struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	FormID      string          `gorm:"type:uuid;not null;index" json:"form_id"`
	SubmittedBy *string         `gorm:"type:uuid" json:"submitted_by,omitempty"`
	Responses   []FieldResponse `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"responses,omitempty"`
	SubmittedAt time.Time       `gorm:"autoCreateTime" json:"submitted_at"`
}

func (s *FormSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// FieldResponse holds one answer value. The referenced field always belongs
// to the same form as the owning submission; the submission service checks
// this before any row is written.
type FieldResponse struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID string         `gorm:"type:uuid;not null;index" json:"submission_id"`
	FieldID      string         `gorm:"type:uuid;not null;index" json:"field_id"`
	Value        datatypes.JSON `json:"value"`
}

func (r *FieldResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
