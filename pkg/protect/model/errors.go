package model

import (
	"fmt"
	"strings"
)

// IntegrityKind identifies the verification failure class carried by an
// IntegrityError. Callers that need to branch on the failure mode should
// compare kinds instead of matching message text.
type IntegrityKind string

const (
	// MalformedContainer reports rules container bytes that decode as
	// neither protobuf nor JSON.
	MalformedContainer IntegrityKind = "MALFORMED_CONTAINER"
	// MalformedSignatures reports a rules signature blob that decodes as
	// neither protobuf nor JSON.
	MalformedSignatures IntegrityKind = "MALFORMED_SIGNATURES"
	// MalformedPayload reports a payloadAsString that is not valid JSON.
	MalformedPayload IntegrityKind = "MALFORMED_PAYLOAD"
	// NoTrustedKeys reports that signature verification was requested
	// without any trusted SuperAdmin public key configured.
	NoTrustedKeys IntegrityKind = "NO_TRUSTED_KEYS"
	// EmptyContainer reports an empty rules container where a signed one
	// was required.
	EmptyContainer IntegrityKind = "EMPTY_CONTAINER"
	// NoSignatures reports that no rules signatures were provided.
	NoSignatures IntegrityKind = "NO_SIGNATURES"
	// InsufficientSignatures reports that fewer distinct SuperAdmin
	// signatures verified than the configured minimum. Found and Required
	// on the error carry the counts.
	InsufficientSignatures IntegrityKind = "INSUFFICIENT_SIGNATURES"
	// NoApplicableRule reports that no whitelisting rule matched the
	// entity key of the verified payload.
	NoApplicableRule IntegrityKind = "NO_APPLICABLE_RULE"
	// AmbiguousRule reports that more than one whitelisting rule matched
	// the entity key of the verified payload.
	AmbiguousRule IntegrityKind = "AMBIGUOUS_RULE"
	// ThresholdNotMet reports that no parallel signature path satisfied
	// all of its group thresholds.
	ThresholdNotMet IntegrityKind = "THRESHOLD_NOT_MET"
	// HashMismatch reports that the recomputed payload hash does not match
	// the hash announced in the metadata.
	HashMismatch IntegrityKind = "HASH_MISMATCH"
	// RequestHashMismatch reports a request whose metadata hash does not
	// match its payload. RequestID on the error carries the request id.
	RequestHashMismatch IntegrityKind = "REQUEST_HASH_MISMATCH"
)

// IntegrityError reports a cryptographic or structural verification failure.
// Data covered by such an error must never be trusted.
type IntegrityError struct {
	Kind    IntegrityKind
	Message string

	// RequestID is set for RequestHashMismatch.
	RequestID int64
	// Found and Required are set for InsufficientSignatures.
	Found    int
	Required int
	// RuleKey is set for NoApplicableRule, AmbiguousRule and
	// ThresholdNotMet. It names the rule lookup key, for example
	// "ALGO/mainnet".
	RuleKey string
	// Threshold is the index of the last failing parallel path, set for
	// ThresholdNotMet.
	Threshold int
}

func (e *IntegrityError) Error() string {
	var b strings.Builder
	b.WriteString("integrity error")
	if e.Kind != "" {
		fmt.Fprintf(&b, " (%s)", e.Kind)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// ValidationKind identifies the precondition violated by a ValidationError.
type ValidationKind string

const (
	// MissingHash reports a request submitted for approval without a
	// metadata hash. RequestID on the error carries the request id.
	MissingHash ValidationKind = "MISSING_HASH"
)

// ValidationError reports caller-supplied arguments that violate a
// precondition. It is raised before any network or cryptographic work.
type ValidationError struct {
	Kind    ValidationKind
	Message string

	// RequestID is set for MissingHash.
	RequestID int64
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation error")
	if e.Kind != "" {
		fmt.Fprintf(&b, " (%s)", e.Kind)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// NotFoundError reports a lookup for an entity the platform does not know.
type NotFoundError struct {
	// Resource names the entity kind, for example "whitelisted address".
	Resource string
	// ID is the identifier that was looked up, when known.
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// TransportError reports a failure to talk to the platform, or a non-2xx
// reply that does not map to a more specific error.
type TransportError struct {
	// StatusCode is the HTTP status of the reply, zero when the request
	// never produced one.
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

// Unwrap returns the underlying cause, when one was recorded.
func (e *TransportError) Unwrap() error {
	return e.Err
}
