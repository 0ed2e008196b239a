package model

type CreatePostDTO struct {
	Title       string        `json:"title" validate:"required"`
	Description *string       `json:"description,omitempty"`
	Status      PostStatus    `json:"status,omitempty"`
	CategoryIDs []string      `json:"category_ids,omitempty"`
	Media       []*MediaInput `json:"media,omitempty"`
}
