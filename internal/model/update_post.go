package model

// UpdatePostDTO is a tri-state partial update: a nil pointer means "leave
// untouched", a pointer to an empty slice means "clear", a populated slice
// means "replace wholesale".
type UpdatePostDTO struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *PostStatus    `json:"status,omitempty"`
	CategoryIDs *[]string      `json:"category_ids,omitempty"`
	Media       *[]*MediaInput `json:"media,omitempty"`
}
