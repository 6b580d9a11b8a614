package model

import "time"

// Metadata carries the signed payload of a whitelisted entity or request
// together with its announced hash.
//
// SECURITY: the exact payload string is what the approvers signed. Any
// structured payload field the platform may also return is intentionally
// not modeled here; verified values must be parsed from PayloadAsString
// only, after the hash has been checked.
type Metadata struct {
	// Hash is the hex-encoded SHA-256 of PayloadAsString.
	Hash string `json:"hash,omitempty"`
	// PayloadAsString is the exact JSON string covered by Hash.
	PayloadAsString string `json:"payload_as_string,omitempty"`
}

// WhitelistSignature is one approval signature entry. Hashes lists the
// hex-encoded hashes the signature covers; the signature verifies over the
// bytes of each covered hash string.
type WhitelistSignature struct {
	UserSignature *WhitelistUserSignature `json:"user_signature,omitempty"`
	Hashes        []string                `json:"hashes,omitempty"`
}

// WhitelistUserSignature identifies the signing user and carries the
// base64-encoded DER signature.
type WhitelistUserSignature struct {
	UserID    string `json:"user_id,omitempty"`
	Signature string `json:"signature,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// SignedWhitelistedAddress is the signed payload block of an address
// envelope.
type SignedWhitelistedAddress struct {
	// Payload is the raw payload as returned by the platform. It is a
	// hint only; verification reads Metadata.PayloadAsString.
	Payload    string               `json:"payload,omitempty"`
	Signatures []WhitelistSignature `json:"signatures,omitempty"`
}

// SignedContractAddress is the signed payload block of an asset envelope.
type SignedContractAddress struct {
	// Payload is the raw payload as returned by the platform. It is a
	// hint only; verification reads Metadata.PayloadAsString.
	Payload    string               `json:"payload,omitempty"`
	Signatures []WhitelistSignature `json:"signatures,omitempty"`
}

// HashRulesContainer is one normalized rules container entry attached to a
// list reply. Envelopes reference it through their RulesContainerHash.
type HashRulesContainer struct {
	Hash            string `json:"hash,omitempty"`
	RulesContainer  string `json:"rules_container,omitempty"`
	RulesSignatures string `json:"rules_signatures,omitempty"`
}

// Approvers describes the approval state the platform reports for an
// entity. It is informational; verification recomputes approval from the
// signatures.
type Approvers struct {
	CurrentCount   int                       `json:"current_count,omitempty"`
	RequestedCount int                       `json:"requested_count,omitempty"`
	Groups         []*ParallelApproversGroup `json:"groups,omitempty"`
}

// ParallelApproversGroup is one parallel approval path.
type ParallelApproversGroup struct {
	Groups []*ApproversGroup `json:"groups,omitempty"`
}

// ApproversGroup is one group inside a parallel approval path.
type ApproversGroup struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name,omitempty"`
	RequiredCount  int      `json:"required_count,omitempty"`
	ApprovedCount  int      `json:"approved_count,omitempty"`
	UserIDs        []string `json:"user_ids,omitempty"`
	ApproverUserID []string `json:"approver_user_ids,omitempty"`
}

// Trail is one audit trail entry.
type Trail struct {
	Action    string     `json:"action,omitempty"`
	UserID    string     `json:"user_id,omitempty"`
	Comment   string     `json:"comment,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Score is one risk score entry attached by the platform.
type Score struct {
	Provider string `json:"provider,omitempty"`
	Score    string `json:"score,omitempty"`
	Details  string `json:"details,omitempty"`
}

// InternalAddress is an internal platform address linked to a whitelisted
// address.
type InternalAddress struct {
	ID    int64  `json:"id,omitempty"`
	Label string `json:"label,omitempty"`
}

// InternalWallet is an internal platform wallet linked to a whitelisted
// address.
type InternalWallet struct {
	ID    int64  `json:"id,omitempty"`
	Path  string `json:"path,omitempty"`
	Label string `json:"label,omitempty"`
}
