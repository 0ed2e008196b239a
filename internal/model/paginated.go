package model

type PaginatedResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResponse computes page metadata from skip/limit the way the
// list endpoints report it: page is 1-based, total_pages rounds up.
func NewPaginatedResponse[T any](items []T, total, skip, limit int) *PaginatedResponse[T] {
	page := 1
	totalPages := 1
	if limit > 0 {
		page = (skip / limit) + 1
		totalPages = (total + limit - 1) / limit
	}
	if items == nil {
		items = []T{}
	}
	return &PaginatedResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages,
	}
}
