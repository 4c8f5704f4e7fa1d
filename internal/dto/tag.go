package dto

// Tag Request DTOs

// CreateTagRequest represents the request payload for creating a tag
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,tag_name"`
	Color string `json:"color" validate:"omitempty,hex_color"`
}

// UpdateTagRequest renames and/or recolors a tag. Omitted fields are left unchanged.
type UpdateTagRequest struct {
	Name  *string `json:"name" validate:"omitempty,tag_name"`
	Color *string `json:"color" validate:"omitempty,hex_color"`
}
