package entity

import "math"

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MaxOffset bounds Page*Size so the offset fits every int and SQL OFFSET
const MaxOffset = math.MaxInt32

// PageRequest selects a zero-based page
type PageRequest struct {
	Page int
	Size int
}

// Normalize applies defaults and bounds
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	if p.Page > MaxOffset/p.Size {
		p.Page = MaxOffset / p.Size
	}
	return p
}

// Offset returns the number of rows to skip, saturating at MaxOffset
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > MaxOffset/p.Size {
		return MaxOffset
	}
	return p.Page * p.Size
}

// Page is one slice of an ordered result set
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalItems int64
}

// NewPage builds a page for the given request
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
	}
}

// TotalPages returns the number of pages at the current size
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.Size) - 1) / int64(p.Size))
}
