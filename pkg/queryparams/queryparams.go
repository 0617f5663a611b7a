package queryparams

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultSortBy  = "year"
	DefaultOrderBy = "desc"
)

// ListParams carries paging, sorting and filter values read from the query string.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`

	Status    string `query:"status"`
	Year      int    `query:"year"`
	Type      string `query:"type"`
	Category  string `query:"category"`
	Committee string `query:"committee"`
	Active    *bool  `query:"-"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func DefaultListParams() ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  DefaultSortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Parse reads ListParams from the request, falling back to defaults for anything invalid.
// active accepts true/false/1/0; anything else leaves the filter unset.
func Parse(c *fiber.Ctx) ListParams {
	params := DefaultListParams()
	_ = c.QueryParser(&params)
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			params.Active = &v
		}
	}
	params.Status = strings.TrimSpace(params.Status)
	params.Type = strings.TrimSpace(params.Type)
	params.Category = strings.TrimSpace(params.Category)
	params.Committee = strings.TrimSpace(params.Committee)
	params.Validate()
	return params
}

// Validate clamps paging values and normalizes the sort direction.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	p.OrderBy = strings.ToLower(p.OrderBy)
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(perPage) - 1) / int64(perPage))
}
