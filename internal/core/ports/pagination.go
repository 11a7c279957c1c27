package ports

import (
	"math"

	"fulfillment/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination selects one page of a list. Page is 1-based.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination applies defaults for unset values and rejects out of range ones.
//
// Parameters:
//   - page: nil means DefaultPage, otherwise must be >= 1
//   - limit: nil means DefaultLimit, otherwise must be within 1..MaxLimit
func NewPagination(page, limit *int) (Pagination, error) {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}

	if page != nil {
		if *page < 1 {
			return Pagination{}, errs.NewValueIsOutOfRangeError("page", *page, 1, math.MaxInt32)
		}
		p.Page = *page
	}
	if limit != nil {
		if *limit < 1 || *limit > MaxLimit {
			return Pagination{}, errs.NewValueIsOutOfRangeError("limit", *limit, 1, MaxLimit)
		}
		p.Limit = *limit
	}

	return p, nil
}

// Offset is the number of rows skipped before this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns ceil(total / limit), the number of pages for total rows.
func (p Pagination) Pages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
