// Package model defines the domain types of the Protect SDK: governance
// rules containers, whitelisted addresses and assets, requests, and the
// error taxonomy shared by all verification paths.
package model

// Pagination describes the position of a list reply within the full
// result set.
type Pagination struct {
	// TotalItems is the size of the full result set.
	TotalItems int64 `json:"total_items,omitempty"`
	// Limit and Offset echo the listing window that was requested.
	Limit  int64 `json:"limit,omitempty"`
	Offset int64 `json:"offset,omitempty"`
	// HasMore reports whether entries exist past the current window.
	HasMore bool `json:"has_more,omitempty"`
}
