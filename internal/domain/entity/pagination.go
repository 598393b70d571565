package entity

import "math"

// PageQuery is a 1-based page request.
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize fills defaults, clamps the limit and keeps the offset from overflowing.
func (q PageQuery) Normalize(defaultLimit, maxLimit int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}

	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}

	if q.Limit > 0 && q.Page > math.MaxInt/q.Limit {
		q.Page = math.MaxInt / q.Limit
	}

	return q
}

// Offset is the number of rows to skip.
func (q PageQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// Pagination describes a paged result set.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes page counts for total rows.
func NewPagination(q PageQuery, total int64) Pagination {
	pages := 0
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}

	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  pages,
		Total:       total,
		Limit:       q.Limit,
		HasNext:     q.Page < pages,
		HasPrev:     q.Page > 1,
	}
}
