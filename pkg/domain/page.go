package domain

import "math"

// SortDirection is the ordering of a paginated listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageRequest describes a zero-based offset page.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir SortDirection
}

const (
	// DefaultPageSize is used when a listing is requested without a size.
	DefaultPageSize = 10
	// MaxPageSize caps the number of items returned by one listing call.
	MaxPageSize = 100
	// MaxPage is the last page whose offset fits in an int.
	MaxPage = math.MaxInt / MaxPageSize
)

// Normalize clamps the page into valid bounds and fills defaults.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.SortDir != SortAsc {
		p.SortDir = SortDesc
	}

	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int { return p.Page * p.Size }

// Page is one page of a listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"currentPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// NewPage builds a Page from the items of the requested page and the total count.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Items:       items,
		CurrentPage: req.Page,
		TotalItems:  total,
		TotalPages:  pages,
	}
}
