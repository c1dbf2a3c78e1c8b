package pagination

import "math"

type Params struct {
	Page     int
	PageSize int
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	limit = p.PageSize
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt, limit
	}
	offset = (p.Page - 1) * p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = totalItems / p.PageSize
		if totalItems%p.PageSize != 0 {
			totalPages++
		}
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Result is one page of items plus where it sits in the whole list
type Result[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Page returns the window of items selected by p. A zero PageSize returns every item.
func Page[T any](items []T, p Params) []T {
	offset, limit := p.CalculateOffsetLimit()
	if limit <= 0 {
		return items
	}
	if offset < 0 || offset >= len(items) {
		return []T{}
	}

	return items[offset : offset+min(limit, len(items)-offset)]
}

// Paginate slices items and describes the page
func Paginate[T any](items []T, p Params) Result[T] {
	page := Page(items, p)
	if page == nil {
		page = []T{}
	}

	return Result[T]{
		Items: page,
		Meta:  p.BuildMeta(len(items)),
	}
}
