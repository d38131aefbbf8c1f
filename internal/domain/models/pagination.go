package models

// PaginationQuery carries page and size parameters from list requests
type PaginationQuery struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// PaginationResult reports the page window and total rows of a list response
type PaginationResult struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPaginationResult builds a pagination result, deriving the page count
func NewPaginationResult(page, limit int, total int64) PaginationResult {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return PaginationResult{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
