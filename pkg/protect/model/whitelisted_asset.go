package model

import "time"

// WhitelistedAssetEnvelope is the platform record of a whitelisted asset,
// a token contract approved for a blockchain and network. Every field is
// server-supplied and untrusted until the envelope has been verified.
type WhitelistedAssetEnvelope struct {
	ID       int64  `json:"id,omitempty"`
	TenantID int64  `json:"tenant_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Action   string `json:"action,omitempty"`

	// Blockchain, Network and ContractAddress are display hints. They are
	// never copied into the verified value.
	Blockchain      string `json:"blockchain,omitempty"`
	Network         string `json:"network,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`

	// Metadata carries the signed payload and its hash.
	Metadata *Metadata `json:"metadata,omitempty"`
	// SignedContractAddress carries the approval signatures.
	SignedContractAddress *SignedContractAddress `json:"signed_contract_address,omitempty"`

	// RulesContainer and RulesSignatures are the base64-encoded governance
	// rules this asset was approved under. RulesContainerHash references a
	// normalized container attached to a list reply instead.
	RulesContainer     string `json:"rules_container,omitempty"`
	RulesContainerHash string `json:"rules_container_hash,omitempty"`
	RulesSignatures    string `json:"rules_signatures,omitempty"`

	Trails    []*Trail   `json:"trails,omitempty"`
	Approvers *Approvers `json:"approvers,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	verifiedAsset          *WhitelistedAsset
	verifiedRulesContainer *DecodedRulesContainer
}

// WhitelistedAsset returns the verified asset value, or nil when the
// envelope has not been verified.
func (e *WhitelistedAssetEnvelope) WhitelistedAsset() *WhitelistedAsset {
	if e == nil {
		return nil
	}
	return e.verifiedAsset
}

// DecodedRulesContainer returns the verified rules container the asset was
// checked against, or nil when the envelope has not been verified.
func (e *WhitelistedAssetEnvelope) DecodedRulesContainer() *DecodedRulesContainer {
	if e == nil {
		return nil
	}
	return e.verifiedRulesContainer
}

// SetVerified records the verification outcome. It is called internally
// after the envelope passed all verification steps.
func (e *WhitelistedAssetEnvelope) SetVerified(asset *WhitelistedAsset, container *DecodedRulesContainer) {
	e.verifiedAsset = asset
	e.verifiedRulesContainer = container
}

// WhitelistedAsset is the verified value of an asset envelope. All fields
// are parsed from the signed payload, never from envelope hints.
type WhitelistedAsset struct {
	Blockchain      string `json:"blockchain,omitempty"`
	Network         string `json:"network,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
	Name            string `json:"name,omitempty"`
	Symbol          string `json:"symbol,omitempty"`
	Decimals        int    `json:"decimals,omitempty"`
}

// ListWhitelistedAssetsOptions narrows a whitelisted asset listing. A nil
// options value lists everything the caller may see.
type ListWhitelistedAssetsOptions struct {
	Limit  int64
	Offset int64
	// Blockchain and Network filter on the envelope hints.
	Blockchain string
	Network    string
	// IncludeForApproval includes records still awaiting approval.
	IncludeForApproval bool
}
