package model

import (
	"crypto/ecdsa"
	"sync"
)

// DecodedRulesContainer is the normalized form of a governance rules
// container, produced by the container decoder from either the protobuf or
// the JSON wire shape. It is the single source of truth for users, groups
// and whitelisting rules during verification.
type DecodedRulesContainer struct {
	// Users is the user table, in container order. Threshold evaluation
	// iterates this slice so that results do not depend on input order.
	Users []*RuleUser `json:"users,omitempty"`
	// Groups is the group table referenced by group thresholds.
	Groups []*RuleGroup `json:"groups,omitempty"`

	// MinimumDistinctUserSignatures is the governance-wide floor of
	// distinct user signatures required on rule changes.
	MinimumDistinctUserSignatures uint32 `json:"minimum_distinct_user_signatures,omitempty"`
	// MinimumDistinctGroupSignatures is the governance-wide floor of
	// distinct group signatures required on rule changes.
	MinimumDistinctGroupSignatures uint32 `json:"minimum_distinct_group_signatures,omitempty"`
	// MinimumCommitmentSignatures is the floor of commitment signatures
	// required by the engine.
	MinimumCommitmentSignatures uint32 `json:"minimum_commitment_signatures,omitempty"`

	// TransactionRules describe outgoing transaction governance. They are
	// decoded structurally and carried through, but not evaluated here.
	TransactionRules []*TransactionRules `json:"transaction_rules,omitempty"`
	// AddressWhitelistingRules gate whitelisted address approval per
	// (currency, network) pair.
	AddressWhitelistingRules []*AddressWhitelistingRules `json:"address_whitelisting_rules,omitempty"`
	// ContractAddressWhitelistingRules gate whitelisted asset approval per
	// (blockchain, network) pair.
	ContractAddressWhitelistingRules []*ContractAddressWhitelistingRules `json:"contract_address_whitelisting_rules,omitempty"`

	// EnforcedRulesHash is the hash of the rules the engine currently
	// enforces, when the platform reports one.
	EnforcedRulesHash string `json:"enforced_rules_hash,omitempty"`
	// Timestamp is the container creation time in Unix seconds.
	Timestamp int64 `json:"timestamp,omitempty"`
	// EngineIdentities lists the engine identity keys.
	EngineIdentities []string `json:"engine_identities,omitempty"`
	// HsmSlotID is the HSM slot holding the platform key.
	HsmSlotID uint32 `json:"hsm_slot_id,omitempty"`
	// Properties carries opaque container-level properties.
	Properties map[string]string `json:"properties,omitempty"`

	hsmPublicKeyOnce sync.Once
	hsmPublicKey     *ecdsa.PublicKey
}

// RuleUser is a governance user entry.
type RuleUser struct {
	ID string `json:"id,omitempty"`
	// PublicKeyPEM is the user public key in PEM form, normalized by the
	// decoder when the key parses.
	PublicKeyPEM string `json:"public_key_pem,omitempty"`
	// PublicKey is the parsed ECDSA key, nil when PublicKeyPEM does not
	// parse.
	PublicKey *ecdsa.PublicKey `json:"-"`
	// Roles holds role names such as "SUPERADMIN". Unknown numeric roles
	// decode as "UNKNOWN_<n>".
	Roles []string `json:"roles,omitempty"`
	// Properties carries opaque user-level properties.
	Properties map[string]string `json:"properties,omitempty"`
}

// RoleSuperAdmin is the role name carried by users whose keys anchor
// governance rules signatures.
const RoleSuperAdmin = "SUPERADMIN"

// HasRole reports whether the user carries the given role name.
func (u *RuleUser) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RuleGroup is a governance group entry.
type RuleGroup struct {
	ID      string   `json:"id,omitempty"`
	UserIDs []string `json:"user_ids,omitempty"`
	// Properties carries opaque group-level properties.
	Properties map[string]string `json:"properties,omitempty"`
}

// ContainsUser reports whether the group lists the given user id.
func (g *RuleGroup) ContainsUser(userID string) bool {
	if g == nil {
		return false
	}
	for _, id := range g.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// GroupThreshold requires MinimumSignatures distinct members of the group
// identified by GroupID.
type GroupThreshold struct {
	GroupID           string `json:"group_id,omitempty"`
	MinimumSignatures int    `json:"minimum_signatures,omitempty"`
}

// SequentialThresholds is a conjunction of group thresholds. Every
// threshold must be satisfied, by pairwise disjoint signer sets, for the
// sequence to pass.
type SequentialThresholds struct {
	Thresholds []*GroupThreshold `json:"thresholds,omitempty"`
}

// AddressWhitelistingRules is the approval rule for whitelisted addresses
// on one (currency, network) pair. ParallelThresholds is a disjunction:
// one satisfied sequence approves the address.
type AddressWhitelistingRules struct {
	Currency           string                  `json:"currency,omitempty"`
	Network            string                  `json:"network,omitempty"`
	ParallelThresholds []*SequentialThresholds `json:"parallel_thresholds,omitempty"`
}

// ContractAddressWhitelistingRules is the approval rule for whitelisted
// assets on one (blockchain, network) pair.
type ContractAddressWhitelistingRules struct {
	Blockchain         string                  `json:"blockchain,omitempty"`
	Network            string                  `json:"network,omitempty"`
	ParallelThresholds []*SequentialThresholds `json:"parallel_thresholds,omitempty"`
}

// TransactionRules is one transaction governance rule, decoded structurally.
type TransactionRules struct {
	Key   string             `json:"key,omitempty"`
	Lines []*TransactionLine `json:"lines,omitempty"`
}

// TransactionLine is one row of a transaction rule table.
type TransactionLine struct {
	// Cells holds the raw rule cells. Their interpretation is up to the
	// transaction engine.
	Cells [][]byte `json:"cells,omitempty"`
	// ParallelThresholds are the signature paths gating the line.
	ParallelThresholds []*SequentialThresholds `json:"parallel_thresholds,omitempty"`
}

// FindUserByID returns the user with the given id, or nil.
func (c *DecodedRulesContainer) FindUserByID(id string) *RuleUser {
	if c == nil {
		return nil
	}
	for _, u := range c.Users {
		if u != nil && u.ID == id {
			return u
		}
	}
	return nil
}

// FindGroupByID returns the group with the given id, or nil.
func (c *DecodedRulesContainer) FindGroupByID(id string) *RuleGroup {
	if c == nil {
		return nil
	}
	for _, g := range c.Groups {
		if g != nil && g.ID == id {
			return g
		}
	}
	return nil
}

// SuperAdminUsers returns the users carrying the SUPERADMIN role, in
// container order.
func (c *DecodedRulesContainer) SuperAdminUsers() []*RuleUser {
	if c == nil {
		return nil
	}
	var admins []*RuleUser
	for _, u := range c.Users {
		if u.HasRole(RoleSuperAdmin) {
			admins = append(admins, u)
		}
	}
	return admins
}

// GetHsmPublicKey returns the parsed public key of the first user carrying
// the HSMSLOT role, or nil when there is none. The result is cached, the
// container is treated as immutable after decoding.
func (c *DecodedRulesContainer) GetHsmPublicKey() *ecdsa.PublicKey {
	if c == nil {
		return nil
	}
	c.hsmPublicKeyOnce.Do(func() {
		for _, u := range c.Users {
			if u.HasRole("HSMSLOT") && u.PublicKey != nil {
				c.hsmPublicKey = u.PublicKey
				return
			}
		}
	})
	return c.hsmPublicKey
}

// IsEmpty reports whether the container carries no users, groups or
// whitelisting rules.
func (c *DecodedRulesContainer) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Users) == 0 && len(c.Groups) == 0 &&
		len(c.AddressWhitelistingRules) == 0 && len(c.ContractAddressWhitelistingRules) == 0
}
