package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Int64String is a 64-bit integer in a gateway reply. The gateway encodes
// int64 as a JSON string; older replies and hand-built fixtures use bare
// numbers, and absent values appear as "" or null.
type Int64String int64

// Int64 returns the plain integer value.
func (v Int64String) Int64() int64 {
	return int64(v)
}

func (v Int64String) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(v), 10))), nil
}

func (v *Int64String) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*v = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		*v = 0
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid int64 value %s", string(data))
	}
	*v = Int64String(parsed)
	return nil
}

// MetadataDTO carries the signed payload of an entity and its hash.
type MetadataDTO struct {
	Hash            string `json:"hash,omitempty"`
	PayloadAsString string `json:"payloadAsString,omitempty"`
}

// WhitelistUserSignatureDTO is one user signature entry.
type WhitelistUserSignatureDTO struct {
	UserID    string `json:"userId,omitempty"`
	Signature string `json:"signature,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// WhitelistSignatureDTO is one approval signature with the hashes it
// covers.
type WhitelistSignatureDTO struct {
	UserSignature *WhitelistUserSignatureDTO `json:"userSignature,omitempty"`
	Hashes        []string                   `json:"hashes,omitempty"`
}

// SignedWhitelistedAddressDTO is the signed payload block of an address
// envelope.
type SignedWhitelistedAddressDTO struct {
	Payload    string                  `json:"payload,omitempty"`
	Signatures []WhitelistSignatureDTO `json:"signatures,omitempty"`
}

// SignedContractAddressDTO is the signed payload block of an asset
// envelope.
type SignedContractAddressDTO struct {
	Payload    string                  `json:"payload,omitempty"`
	Signatures []WhitelistSignatureDTO `json:"signatures,omitempty"`
}

// HashRulesContainerDTO is one normalized rules container entry of a list
// reply.
type HashRulesContainerDTO struct {
	Hash            string `json:"hash,omitempty"`
	RulesContainer  string `json:"rulesContainer,omitempty"`
	RulesSignatures string `json:"rulesSignatures,omitempty"`
}

// InternalAddressDTO is an internal platform address linked to a
// whitelisted address.
type InternalAddressDTO struct {
	ID    Int64String `json:"id,omitempty"`
	Label string      `json:"label,omitempty"`
}

// InternalWalletDTO is an internal platform wallet linked to a whitelisted
// address.
type InternalWalletDTO struct {
	ID   Int64String `json:"id,omitempty"`
	Name string      `json:"name,omitempty"`
	Path string      `json:"path,omitempty"`
}

// TrailDTO is one audit trail entry.
type TrailDTO struct {
	Action    string     `json:"action,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	Comment   string     `json:"comment,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ScoreDTO is one risk score entry.
type ScoreDTO struct {
	Provider string `json:"provider,omitempty"`
	Score    string `json:"score,omitempty"`
	Details  string `json:"details,omitempty"`
}

// ApproversGroupDTO is one approval group. Counts are int32 on the wire,
// so they arrive as bare JSON numbers.
type ApproversGroupDTO struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name,omitempty"`
	RequiredCount   int      `json:"requiredCount,omitempty"`
	ApprovedCount   int      `json:"approvedCount,omitempty"`
	UserIDs         []string `json:"userIds,omitempty"`
	ApproverUserIDs []string `json:"approverUserIds,omitempty"`
}

// ParallelApproversGroupDTO is one parallel approval path.
type ParallelApproversGroupDTO struct {
	Groups []ApproversGroupDTO `json:"groups,omitempty"`
}

// ApproversDTO describes the approval state the platform reports.
type ApproversDTO struct {
	CurrentCount   int                         `json:"currentCount,omitempty"`
	RequestedCount int                         `json:"requestedCount,omitempty"`
	Groups         []ParallelApproversGroupDTO `json:"groups,omitempty"`
}

// WhitelistedAddressAttributeDTO is one typed attribute of an address
// record.
type WhitelistedAddressAttributeDTO struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
}
