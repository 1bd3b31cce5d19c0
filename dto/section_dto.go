package dto

type CreateSectionDTO struct {
	FormID string  `json:"form_id" binding:"required,uuid"`
	Title  *string `json:"title,omitempty"`
	Order  *int    `json:"order,omitempty"`
}

type UpdateSectionDTO struct {
	Title *string `json:"title,omitempty"`
	Order *int    `json:"order,omitempty"`
}

type ReorderSectionsDTO struct {
	FormID   string         `json:"form_id" binding:"required,uuid"`
	Sections []OrderPairDTO `json:"sections" binding:"required,min=1,dive"`
}
