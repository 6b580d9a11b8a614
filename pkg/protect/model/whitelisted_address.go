package model

import "time"

// WhitelistedAddressEnvelope is the platform record of a whitelisted
// address. Every field is server-supplied and untrusted until the envelope
// has been verified; the verified value is then available through
// WhitelistedAddress.
type WhitelistedAddressEnvelope struct {
	ID       int64  `json:"id,omitempty"`
	TenantID int64  `json:"tenant_id,omitempty"`
	Status   string `json:"status,omitempty"`

	// Blockchain, Network, Address and Label are display hints. They are
	// never copied into the verified value.
	Blockchain string `json:"blockchain,omitempty"`
	Network    string `json:"network,omitempty"`
	Address    string `json:"address,omitempty"`
	Label      string `json:"label,omitempty"`

	// Metadata carries the signed payload and its hash.
	Metadata *Metadata `json:"metadata,omitempty"`
	// SignedAddress carries the approval signatures.
	SignedAddress *SignedWhitelistedAddress `json:"signed_address,omitempty"`

	// RulesContainer and RulesSignatures are the base64-encoded governance
	// rules this address was approved under. RulesContainerHash references
	// a normalized container attached to a list reply instead.
	RulesContainer     string `json:"rules_container,omitempty"`
	RulesContainerHash string `json:"rules_container_hash,omitempty"`
	RulesSignatures    string `json:"rules_signatures,omitempty"`

	LinkedInternalAddresses []*InternalAddress             `json:"linked_internal_addresses,omitempty"`
	LinkedWallets           []*InternalWallet              `json:"linked_wallets,omitempty"`
	Scores                  []*Score                       `json:"scores,omitempty"`
	Trails                  []*Trail                       `json:"trails,omitempty"`
	Approvers               *Approvers                     `json:"approvers,omitempty"`
	Attributes              []*WhitelistedAddressAttribute `json:"attributes,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	verifiedAddress        *WhitelistedAddress
	verifiedRulesContainer *DecodedRulesContainer
}

// WhitelistedAddressAttribute is one typed attribute of an address record.
type WhitelistedAddressAttribute struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
}

// WhitelistedAddress returns the verified address value, or nil when the
// envelope has not been verified.
func (e *WhitelistedAddressEnvelope) WhitelistedAddress() *WhitelistedAddress {
	if e == nil {
		return nil
	}
	return e.verifiedAddress
}

// DecodedRulesContainer returns the verified rules container the address
// was checked against, or nil when the envelope has not been verified.
func (e *WhitelistedAddressEnvelope) DecodedRulesContainer() *DecodedRulesContainer {
	if e == nil {
		return nil
	}
	return e.verifiedRulesContainer
}

// SetVerified records the verification outcome. It is called internally
// after the envelope passed all verification steps.
func (e *WhitelistedAddressEnvelope) SetVerified(address *WhitelistedAddress, container *DecodedRulesContainer) {
	e.verifiedAddress = address
	e.verifiedRulesContainer = container
}

// WhitelistedAddress is the verified value of an address envelope. All
// fields are parsed from the signed payload, never from envelope hints.
type WhitelistedAddress struct {
	Blockchain string `json:"blockchain,omitempty"`
	Network    string `json:"network,omitempty"`
	Address    string `json:"address,omitempty"`
	Memo       string `json:"memo,omitempty"`
	Label      string `json:"label,omitempty"`

	CustomerID        string `json:"customer_id,omitempty"`
	ContractType      string `json:"contract_type,omitempty"`
	AddressType       string `json:"address_type,omitempty"`
	TnParticipantID   string `json:"tn_participant_id,omitempty"`
	ExchangeAccountID int64  `json:"exchange_account_id,omitempty"`

	LinkedInternalAddresses []*InternalAddress `json:"linked_internal_addresses,omitempty"`
	LinkedWallets           []*InternalWallet  `json:"linked_wallets,omitempty"`
}

// ListWhitelistedAddressesOptions narrows a whitelisted address listing.
// A nil options value lists everything the caller may see.
type ListWhitelistedAddressesOptions struct {
	Limit  int64
	Offset int64
	// Blockchain and Network filter on the envelope hints.
	Blockchain string
	Network    string
	// Query is a free text search over address and label.
	Query string
	// IncludeForApproval includes records still awaiting approval.
	IncludeForApproval bool
}
