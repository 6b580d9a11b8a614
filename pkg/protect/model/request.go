package model

import "time"

// Request is a pending or processed platform request, for example an
// outgoing transaction awaiting approval.
type Request struct {
	ID       int64  `json:"id,omitempty"`
	TenantID int64  `json:"tenant_id,omitempty"`
	Status   string `json:"status,omitempty"`
	// Action names the requested operation, for example "transaction".
	Action   string `json:"action,omitempty"`
	Currency string `json:"currency,omitempty"`
	// Rule names the governance rule the request is evaluated under.
	Rule string `json:"rule,omitempty"`

	// Metadata carries the request payload and its hash. Approval signs
	// the hash, so the hash is verified against the payload on retrieval.
	Metadata *Metadata `json:"metadata,omitempty"`

	Trails []*Trail `json:"trails,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ListRequestsOptions narrows a request listing. A nil options value lists
// everything the caller may see.
type ListRequestsOptions struct {
	Limit  int64
	Offset int64
	// Statuses filters on request status, for example "PENDING".
	Statuses []string
	Currency string
}
