package dto

// BrowseRequest is the query of GET /api/v1/logos.
type BrowseRequest struct {
	Query    string `form:"q"         validate:"max=200"`
	Sort     string `form:"sort"      validate:"omitempty,oneof=name-asc name-desc"`
	Page     int    `form:"page"      validate:"omitempty,min=1,max=1000000"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1"`
	Size     string `form:"size"      validate:"omitempty,oneof=small medium large"`
}

// Page is one window of a sorted list. Columns is the grid preset's column
// count so clients can lay out rows.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	Sort       string `json:"sort"`
	Size       string `json:"size"`
	Columns    int    `json:"columns"`
}

// HasMore reports whether a later page exists.
func (p Page[T]) HasMore() bool {
	return p.Page < p.TotalPages
}
