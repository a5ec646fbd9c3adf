package dto

import "math"

// Page is one page of a paginated listing.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewPage converts models into a page using convert and the request's pagination params.
func NewPage[M, T any](models []M, total int, params QueryParams, convert func(M) T) Page[T] {
	data := make([]T, len(models))
	for idx, mod := range models {
		data[idx] = convert(mod)
	}

	return Page[T]{
		Data:  data,
		Total: total,
		Page:  max(params.Page, 1),
		Pages: TotalPages(total, params.Limit),
	}
}

// TotalPages returns the page count for total rows at limit rows per page, never less than 1.
func TotalPages(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}
