package dto

import "gorm.io/datatypes"

type FieldResponseInputDTO struct {
	FieldID string         `json:"field_id" binding:"required,uuid"`
	Value   datatypes.JSON `json:"value"`
}

type SubmitFormDTO struct {
	FormID    string                  `json:"form_id" binding:"required,uuid"`
	Responses []FieldResponseInputDTO `json:"responses" binding:"required,dive"`
}
