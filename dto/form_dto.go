package dto

type CreateFormDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type UpdateFormDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type PublishFormDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type CloneFormDTO struct {
	Title              *string `json:"title,omitempty"`
	IncludeSubmissions bool    `json:"include_submissions"`
}

// OrderPairDTO is one entry of a bulk reorder request.
type OrderPairDTO struct {
	ID    string `json:"id" binding:"required,uuid"`
	Order int    `json:"order" binding:"min=0"`
}
