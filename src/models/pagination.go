package models

import "math"

// PaginationParams carries page/limit for table views.
type PaginationParams struct {
	Page  int `json:"page" query:"page"  example:"1"`   // requested page number
	Limit int `json:"limit" query:"limit" example:"10"` // rows per page
}

// PaginatedResponse is the standard envelope for paged data.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination mirrors the detailed dashboard's 10-row table pages.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 10,
	}
}

// Normalize clamps out-of-range values back to the defaults.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPagination().Limit
	}
}

// NewPaginatedResponse wraps data in the pagination envelope.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// Bounds returns the slice window for total rows held in memory.
func (p *PaginationParams) Bounds(total int) (start, end int) {
	start = (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}
