package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeNumber      FieldType = "number"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeDate        FieldType = "date"
	FieldTypeTime        FieldType = "time"
	FieldTypeFile        FieldType = "file"
	FieldTypeSignature   FieldType = "signature"
	FieldTypeSlider      FieldType = "slider"
	FieldTypeRating      FieldType = "rating"
)

// IsChoice reports whether the type carries an options list that must be
// non-empty before the form can be published.
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldTypeSelect, FieldTypeMultiSelect, FieldTypeRadio, FieldTypeCheckbox:
		return true
	}
	return false
}

// Form is the top-level questionnaire definition. A form owns its sections
// exclusively; once created it always has at least one.
type Form struct {
	ID          string           `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"size:200;not null" json:"name"`
	Description *string          `json:"description,omitempty"`
	ImageURL    *string          `gorm:"size:500" json:"image_url,omitempty"`
	IsActive    bool             `gorm:"default:false" json:"is_active"`
	CreatedBy   string           `gorm:"type:uuid;not null;index" json:"created_by"`
	Creator     *User            `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Sections    []Section        `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
	Submissions []FormSubmission `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Section groups fields within a form. Order is strictly increasing per form;
// gaps are allowed after deletions, so readers must sort by order and not
// assume contiguity.
type Section struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	FormID    string    `gorm:"type:uuid;not null;index" json:"form_id"`
	Title     *string   `gorm:"size:200" json:"title,omitempty"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	Fields    []Field   `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Field is a single input definition. The JSON payloads are open-ended and
// interpreted by the frontend renderer.
type Field struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID    string         `gorm:"type:uuid;not null;index" json:"section_id"`
	Label        string         `gorm:"size:300;not null" json:"label"`
	Placeholder  *string        `gorm:"size:300" json:"placeholder,omitempty"`
	Type         FieldType      `gorm:"type:field_type;not null" json:"type"`
	Required     bool           `gorm:"default:false" json:"required"`
	Order        int            `gorm:"column:display_order;not null;default:0" json:"order"`
	Options      datatypes.JSON `json:"options,omitempty"`
	DefaultValue datatypes.JSON `json:"default_value,omitempty"`
	Validation   datatypes.JSON `json:"validation,omitempty"`
	Styling      datatypes.JSON `json:"styling,omitempty"`
	Logic        datatypes.JSON `json:"logic,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
