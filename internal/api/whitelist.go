package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// WhitelistedAddressDTO is the platform record of a whitelisted address.
type WhitelistedAddressDTO struct {
	ID       Int64String `json:"id,omitempty"`
	TenantID Int64String `json:"tenantId,omitempty"`
	Status   string      `json:"status,omitempty"`

	Blockchain string `json:"blockchain,omitempty"`
	Network    string `json:"network,omitempty"`
	Address    string `json:"address,omitempty"`
	Label      string `json:"label,omitempty"`

	Metadata      *MetadataDTO                 `json:"metadata,omitempty"`
	SignedAddress *SignedWhitelistedAddressDTO `json:"signedAddress,omitempty"`

	RulesContainer     string `json:"rulesContainer,omitempty"`
	RulesContainerHash string `json:"rulesContainerHash,omitempty"`
	RulesSignatures    string `json:"rulesSignatures,omitempty"`

	LinkedInternalAddresses []InternalAddressDTO             `json:"linkedInternalAddresses,omitempty"`
	LinkedWallets           []InternalWalletDTO              `json:"linkedWallets,omitempty"`
	Scores                  []ScoreDTO                       `json:"scores,omitempty"`
	Trails                  []TrailDTO                       `json:"trails,omitempty"`
	Approvers               *ApproversDTO                    `json:"approvers,omitempty"`
	Attributes              []WhitelistedAddressAttributeDTO `json:"attributes,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// WhitelistedContractDTO is the platform record of a whitelisted asset.
type WhitelistedContractDTO struct {
	ID       Int64String `json:"id,omitempty"`
	TenantID Int64String `json:"tenantId,omitempty"`
	Status   string      `json:"status,omitempty"`
	Action   string      `json:"action,omitempty"`

	Blockchain      string `json:"blockchain,omitempty"`
	Network         string `json:"network,omitempty"`
	ContractAddress string `json:"contractAddress,omitempty"`

	Metadata              *MetadataDTO              `json:"metadata,omitempty"`
	SignedContractAddress *SignedContractAddressDTO `json:"signedContractAddress,omitempty"`

	RulesContainer     string `json:"rulesContainer,omitempty"`
	RulesContainerHash string `json:"rulesContainerHash,omitempty"`
	RulesSignatures    string `json:"rulesSignatures,omitempty"`

	Trails    []TrailDTO    `json:"trails,omitempty"`
	Approvers *ApproversDTO `json:"approvers,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// AddressListParams narrows a whitelisted address listing.
type AddressListParams struct {
	Limit              int64
	Offset             int64
	Blockchain         string
	Network            string
	Query              string
	IncludeForApproval bool
	// RulesContainerNormalized asks the platform to deduplicate rules
	// containers into the reply-level rulesContainers array.
	RulesContainerNormalized bool
}

func (p *AddressListParams) values() url.Values {
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
	if p.Blockchain != "" {
		query.Set("blockchain", p.Blockchain)
	}
	if p.Network != "" {
		query.Set("network", p.Network)
	}
	if p.Query != "" {
		query.Set("query", p.Query)
	}
	if p.IncludeForApproval {
		query.Set("includeForApproval", "true")
	}
	if p.RulesContainerNormalized {
		query.Set("rulesContainerNormalized", "true")
	}
	return query
}

// ContractListParams narrows a whitelisted asset listing.
type ContractListParams struct {
	Limit                    int64
	Offset                   int64
	Blockchain               string
	Network                  string
	IncludeForApproval       bool
	RulesContainerNormalized bool
}

func (p *ContractListParams) values() url.Values {
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
	if p.Blockchain != "" {
		query.Set("blockchain", p.Blockchain)
	}
	if p.Network != "" {
		query.Set("network", p.Network)
	}
	if p.IncludeForApproval {
		query.Set("includeForApproval", "true")
	}
	if p.RulesContainerNormalized {
		query.Set("rulesContainerNormalized", "true")
	}
	return query
}

// GetWhitelistedAddressReply is the reply of GetWhitelistedAddress.
type GetWhitelistedAddressReply struct {
	Result *WhitelistedAddressDTO `json:"result,omitempty"`
}

// GetWhitelistedAddressesReply is the reply of GetWhitelistedAddresses.
// RulesContainers is only populated when the listing was requested with
// rulesContainerNormalized.
type GetWhitelistedAddressesReply struct {
	Result          []WhitelistedAddressDTO `json:"result,omitempty"`
	RulesContainers []HashRulesContainerDTO `json:"rulesContainers,omitempty"`
	TotalItems      Int64String             `json:"totalItems,omitempty"`
}

// GetWhitelistedContractReply is the reply of GetWhitelistedContract.
type GetWhitelistedContractReply struct {
	Result *WhitelistedContractDTO `json:"result,omitempty"`
}

// GetWhitelistedContractsReply is the reply of GetWhitelistedContracts.
type GetWhitelistedContractsReply struct {
	Result          []WhitelistedContractDTO `json:"result,omitempty"`
	RulesContainers []HashRulesContainerDTO  `json:"rulesContainers,omitempty"`
	TotalItems      Int64String              `json:"totalItems,omitempty"`
}

// GetWhitelistedAddress retrieves one whitelisted address by ID.
func (c *Client) GetWhitelistedAddress(ctx context.Context, id string) (*GetWhitelistedAddressReply, error) {
	reply := &GetWhitelistedAddressReply{}
	if err := c.do(ctx, http.MethodGet, "/whitelists/addresses/"+url.PathEscape(id), nil, nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// GetWhitelistedAddresses retrieves a page of whitelisted addresses.
func (c *Client) GetWhitelistedAddresses(ctx context.Context, params *AddressListParams) (*GetWhitelistedAddressesReply, error) {
	reply := &GetWhitelistedAddressesReply{}
	if err := c.do(ctx, http.MethodGet, "/whitelists/addresses", params.values(), nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// GetWhitelistedContract retrieves one whitelisted asset by ID.
func (c *Client) GetWhitelistedContract(ctx context.Context, id string) (*GetWhitelistedContractReply, error) {
	reply := &GetWhitelistedContractReply{}
	if err := c.do(ctx, http.MethodGet, "/whitelists/contracts/"+url.PathEscape(id), nil, nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// GetWhitelistedContracts retrieves a page of whitelisted assets.
func (c *Client) GetWhitelistedContracts(ctx context.Context, params *ContractListParams) (*GetWhitelistedContractsReply, error) {
	reply := &GetWhitelistedContractsReply{}
	if err := c.do(ctx, http.MethodGet, "/whitelists/contracts", params.values(), nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
