package dto

import "github.com/amirhossein-jamali/card-ledger/internal/domain/entity"

// PageQuery binds the zero-based page selector from the query string
type PageQuery struct {
	Page int `form:"page" binding:"omitempty,min=0"`
	Size int `form:"size" binding:"omitempty,min=1"`
}

// ToPageRequest converts the query; bounds are applied by the use case
func (q PageQuery) ToPageRequest() entity.PageRequest {
	return entity.PageRequest{Page: q.Page, Size: q.Size}
}

// PageResponse is one page of a listing
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResponse maps every item of page with convert
func NewPageResponse[E any, T any](page entity.Page[E], convert func(E) T) PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}
	return PageResponse[T]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages(),
	}
}
