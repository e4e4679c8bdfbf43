// SPDX-License-Identifier: Apache-2.0

package models

// Page is the backend's pagination envelope. Every paginated endpoint wraps
// its items in this structure; clients read Content and the counters.
type Page[T any] struct {
	// Content holds the items of the requested page.
	Content []T `json:"content"`

	// TotalElements is the total number of items across all pages.
	TotalElements int64 `json:"totalElements"`

	// TotalPages is the number of pages at the requested page size.
	TotalPages int `json:"totalPages"`

	// Number is the 0-based index of this page.
	Number int `json:"number"`

	// Size is the requested page size.
	Size int `json:"size"`
}

// PageQuery carries the pagination parameters sent with every list request.
// Page is 0-based; Sort uses the "field,direction" form (e.g.
// "requestTimestamp,desc").
type PageQuery struct {
	Page int
	Size int
	Sort string
}
