package helper

import (
	"crypto/ecdsa"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// WhitelistedAddressVerifier checks whitelisted address envelopes against
// SuperAdmin-signed governance rules.
type WhitelistedAddressVerifier struct {
	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int
}

// NewWhitelistedAddressVerifier returns a verifier trusting the given
// SuperAdmin keys and requiring minValidSignatures distinct signatures on
// every rules container.
func NewWhitelistedAddressVerifier(superAdminKeys []*ecdsa.PublicKey, minValidSignatures int) *WhitelistedAddressVerifier {
	return &WhitelistedAddressVerifier{
		superAdminKeys:     superAdminKeys,
		minValidSignatures: minValidSignatures,
	}
}

// AddressVerificationResult carries the outputs of a successful address
// verification. The verified address is rebuilt from the signed payload
// alone; none of the envelope hint fields flow into it.
type AddressVerificationResult struct {
	RulesContainer  *model.DecodedRulesContainer
	VerifiedAddress *model.WhitelistedAddress
	VerifiedHash    string
}

// VerifyMetadataHash recomputes the payload hash and compares it with the
// announced one in constant time.
func VerifyMetadataHash(metadata *model.Metadata) error {
	if metadata == nil {
		return &model.ValidationError{Message: "metadata cannot be nil"}
	}
	if metadata.PayloadAsString == "" {
		return &model.IntegrityError{
			Kind:    model.HashMismatch,
			Message: "metadata payload is empty",
		}
	}
	if metadata.Hash == "" {
		return &model.IntegrityError{
			Kind:    model.HashMismatch,
			Message: "metadata hash is empty",
		}
	}
	computed := crypto.CalculateHexHash(metadata.PayloadAsString)
	if !ConstantTimeCompare(computed, metadata.Hash) {
		return &model.IntegrityError{
			Kind:    model.HashMismatch,
			Message: "metadata hash does not match payload",
		}
	}
	return nil
}

// VerifyWhitelistedAddress runs the full verification chain on an address
// envelope. The optional verifiedContainer lets callers that already
// verified the envelope's rules container, list replies share containers
// across many envelopes, skip the per-envelope signature check.
func (v *WhitelistedAddressVerifier) VerifyWhitelistedAddress(envelope *model.WhitelistedAddressEnvelope, containerDecoder RulesContainerDecoder, signaturesDecoder UserSignaturesDecoder, verifiedContainer ...*model.DecodedRulesContainer) (*AddressVerificationResult, error) {
	if envelope == nil {
		return nil, &model.ValidationError{Message: "whitelisted address envelope cannot be nil"}
	}

	// The announced hash must match the payload bytes. Nothing else is
	// worth checking if it does not.
	if err := VerifyMetadataHash(envelope.Metadata); err != nil {
		return nil, err
	}

	container, err := trustedContainer(envelope.RulesContainer, envelope.RulesSignatures, v.superAdminKeys, v.minValidSignatures, containerDecoder, signaturesDecoder, verifiedContainer)
	if err != nil {
		return nil, err
	}

	// The rule is resolved from the verified payload, never from the
	// envelope hint fields.
	address, err := ParseWhitelistedAddressFromJSON(envelope.Metadata.PayloadAsString)
	if err != nil {
		return nil, err
	}
	rule, err := ResolveAddressWhitelistingRule(container, address.Blockchain, address.Network)
	if err != nil {
		return nil, err
	}

	if envelope.SignedAddress == nil || len(envelope.SignedAddress.Signatures) == 0 {
		return nil, &model.IntegrityError{
			Kind:    model.NoSignatures,
			Message: "whitelisted address envelope carries no approval signatures",
		}
	}
	covering := SignaturesCoveringHash(envelope.SignedAddress.Signatures, envelope.Metadata.Hash)
	ruleKey := address.Blockchain + "/" + address.Network
	if err := VerifyParallelThresholds(container, rule.ParallelThresholds, covering, envelope.Metadata.Hash, ruleKey); err != nil {
		return nil, err
	}

	return &AddressVerificationResult{
		RulesContainer:  container,
		VerifiedAddress: address,
		VerifiedHash:    envelope.Metadata.Hash,
	}, nil
}

// trustedContainer returns a rules container safe to evaluate thresholds
// against, either the pre-verified one supplied by the caller or the
// envelope's own container after signature verification.
func trustedContainer(rulesContainerB64, rulesSignaturesB64 string, superAdminKeys []*ecdsa.PublicKey, minValidSignatures int, containerDecoder RulesContainerDecoder, signaturesDecoder UserSignaturesDecoder, verifiedContainer []*model.DecodedRulesContainer) (*model.DecodedRulesContainer, error) {
	if len(verifiedContainer) > 0 && verifiedContainer[0] != nil {
		return verifiedContainer[0], nil
	}
	return VerifyAndDecodeRulesContainer(rulesContainerB64, rulesSignaturesB64, superAdminKeys, minValidSignatures, containerDecoder, signaturesDecoder)
}
