package dto

import "gorm.io/datatypes"

type CreateFieldDTO struct {
	SectionID    string         `json:"section_id" binding:"required,uuid"`
	Label        string         `json:"label" binding:"required"`
	Type         string         `json:"type" binding:"required"`
	Placeholder  *string        `json:"placeholder,omitempty"`
	Required     bool           `json:"required"`
	Order        *int           `json:"order,omitempty"`
	Options      datatypes.JSON `json:"options,omitempty"`
	DefaultValue datatypes.JSON `json:"default_value,omitempty"`
	Validation   datatypes.JSON `json:"validation,omitempty"`
	Styling      datatypes.JSON `json:"styling,omitempty"`
	Logic        datatypes.JSON `json:"logic,omitempty"`
}

type UpdateFieldDTO struct {
	Label        *string        `json:"label,omitempty"`
	Placeholder  *string        `json:"placeholder,omitempty"`
	Type         *string        `json:"type,omitempty"`
	Required     *bool          `json:"required,omitempty"`
	Order        *int           `json:"order,omitempty"`
	Options      datatypes.JSON `json:"options,omitempty"`
	DefaultValue datatypes.JSON `json:"default_value,omitempty"`
	Validation   datatypes.JSON `json:"validation,omitempty"`
	Styling      datatypes.JSON `json:"styling,omitempty"`
	Logic        datatypes.JSON `json:"logic,omitempty"`
}

type ReorderFieldsDTO struct {
	SectionID string         `json:"section_id" binding:"required,uuid"`
	Fields    []OrderPairDTO `json:"fields" binding:"required,min=1,dive"`
}

type MoveFieldDTO struct {
	NewSectionID string `json:"new_section_id" binding:"required,uuid"`
	NewOrder     *int   `json:"new_order,omitempty"`
}
