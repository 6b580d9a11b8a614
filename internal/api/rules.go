package api

import (
	"context"
	"net/http"
	"time"
)

// RulesDTO is the signed governance rules record.
type RulesDTO struct {
	TenantID        string     `json:"tenantId,omitempty"`
	Locked          bool       `json:"locked,omitempty"`
	RulesContainer  string     `json:"rulesContainer,omitempty"`
	RulesSignatures string     `json:"rulesSignatures,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// GetRulesReply is the reply of GetRules.
type GetRulesReply struct {
	Result *RulesDTO `json:"result,omitempty"`
}

// GetRules retrieves the current governance rules of the tenant.
func (c *Client) GetRules(ctx context.Context) (*GetRulesReply, error) {
	reply := &GetRulesReply{}
	if err := c.do(ctx, http.MethodGet, "/rules", nil, nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
