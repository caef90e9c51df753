package model

// DefaultLimit is the page size the CMS applies when no limit is requested.
const DefaultLimit = 10

// ListResponse is the envelope every list endpoint returns.
type ListResponse[T any] struct {
	Contents   []T `json:"contents"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

// NewLocalList wraps records served without the CMS in the same envelope the
// CMS would use for a first page.
func NewLocalList[T any](records []T) *ListResponse[T] {
	if records == nil {
		records = []T{}
	}
	return &ListResponse[T]{
		Contents:   records,
		TotalCount: len(records),
		Offset:     0,
		Limit:      DefaultLimit,
	}
}
