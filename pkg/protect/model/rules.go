package model

import "time"

// GovernanceRules is the signed rules record returned by the platform. The
// container stays base64-encoded until its SuperAdmin signatures have been
// verified.
type GovernanceRules struct {
	TenantID string `json:"tenant_id,omitempty"`
	// Locked reports whether rule changes are currently locked.
	Locked    bool       `json:"locked,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// RulesContainer is the base64-encoded rules container. Signatures are
	// verified over its decoded bytes.
	RulesContainer string `json:"rules_container,omitempty"`
	// RulesSignatures is the base64-encoded signature blob as received
	// from the platform.
	RulesSignatures string `json:"rules_signatures,omitempty"`
	// Signatures is the decoded form of RulesSignatures.
	Signatures []*RuleUserSignature `json:"signatures,omitempty"`
}

// RuleUserSignature is one SuperAdmin signature over the rules container
// bytes.
type RuleUserSignature struct {
	UserID string `json:"user_id,omitempty"`
	// Signature is the base64-encoded DER signature.
	Signature string `json:"signature,omitempty"`
}
