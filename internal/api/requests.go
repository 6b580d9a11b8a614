package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RequestDTO is the platform record of a request.
type RequestDTO struct {
	ID       Int64String `json:"id,omitempty"`
	TenantID Int64String `json:"tenantId,omitempty"`
	Status   string      `json:"status,omitempty"`
	Action   string      `json:"action,omitempty"`
	Currency string      `json:"currency,omitempty"`
	Rule     string      `json:"rule,omitempty"`

	Metadata *MetadataDTO `json:"metadata,omitempty"`
	Trails   []TrailDTO   `json:"trails,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RequestListParams narrows a request listing.
type RequestListParams struct {
	Limit    int64
	Offset   int64
	Statuses []string
	Currency string
}

func (p *RequestListParams) values() url.Values {
	query := url.Values{}
	if p == nil {
		return query
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.FormatInt(p.Limit, 10))
	}
	if p.Offset > 0 {
		query.Set("offset", strconv.FormatInt(p.Offset, 10))
	}
	for _, status := range p.Statuses {
		query.Add("statuses", status)
	}
	if p.Currency != "" {
		query.Set("currency", p.Currency)
	}
	return query
}

// GetRequestReply is the reply of GetRequest.
type GetRequestReply struct {
	Result *RequestDTO `json:"result,omitempty"`
}

// GetRequestsReply is the reply of GetRequests.
type GetRequestsReply struct {
	Result     []RequestDTO `json:"result,omitempty"`
	TotalItems Int64String  `json:"totalItems,omitempty"`
}

// ApproveRequestsRequest is the body of ApproveRequests. IDs are decimal
// strings and Signature covers the concatenated request hashes.
type ApproveRequestsRequest struct {
	IDs       []string `json:"ids"`
	Signature string   `json:"signature"`
	Comment   string   `json:"comment,omitempty"`
}

// RejectRequestsRequest is the body of RejectRequests.
type RejectRequestsRequest struct {
	IDs     []string `json:"ids"`
	Comment string   `json:"comment"`
}

// GetRequest retrieves one request by ID.
func (c *Client) GetRequest(ctx context.Context, id string) (*GetRequestReply, error) {
	reply := &GetRequestReply{}
	if err := c.do(ctx, http.MethodGet, "/requests/"+url.PathEscape(id), nil, nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// GetRequests retrieves a page of requests.
func (c *Client) GetRequests(ctx context.Context, params *RequestListParams) (*GetRequestsReply, error) {
	reply := &GetRequestsReply{}
	if err := c.do(ctx, http.MethodGet, "/requests", params.values(), nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ApproveRequests submits an approval for the given requests.
func (c *Client) ApproveRequests(ctx context.Context, body *ApproveRequestsRequest) error {
	return c.do(ctx, http.MethodPost, "/requests/approve", nil, body, nil)
}

// RejectRequests submits a rejection for the given requests.
func (c *Client) RejectRequests(ctx context.Context, body *RejectRequestsRequest) error {
	return c.do(ctx, http.MethodPost, "/requests/reject", nil, body, nil)
}
