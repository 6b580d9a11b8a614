package helper

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// RulesContainerDecoder decodes a base64-encoded rules container.
type RulesContainerDecoder func(base64Data string) (*model.DecodedRulesContainer, error)

// UserSignaturesDecoder decodes a base64-encoded rules signature blob.
type UserSignaturesDecoder func(base64Data string) ([]*model.RuleUserSignature, error)

// VerifyGovernanceRulesSignatures checks that enough distinct SuperAdmins
// signed the raw rules container bytes. Signatures are verified over the
// bytes exactly as the platform serves them, before any decoding. A
// minValidSignatures of zero disables the check entirely.
func VerifyGovernanceRulesSignatures(rulesData []byte, signatures []*model.RuleUserSignature, superAdminKeys []*ecdsa.PublicKey, minValidSignatures int) error {
	if minValidSignatures <= 0 {
		return nil
	}
	if len(superAdminKeys) == 0 {
		return &model.IntegrityError{
			Kind:    model.NoTrustedKeys,
			Message: "signature verification requires at least one SuperAdmin public key",
		}
	}
	if len(rulesData) == 0 {
		return &model.IntegrityError{
			Kind:    model.EmptyContainer,
			Message: "rules container is empty",
		}
	}
	if len(signatures) == 0 {
		return &model.IntegrityError{
			Kind:    model.NoSignatures,
			Message: "rules container carries no signatures",
		}
	}

	// Several signature entries may name the same user. A user counts
	// once no matter how many of their signatures verify.
	verified := make(map[string]struct{}, len(signatures))
	for _, signature := range signatures {
		if signature == nil {
			continue
		}
		if _, done := verified[signature.UserID]; done {
			continue
		}
		for _, key := range superAdminKeys {
			ok, err := crypto.VerifySignature(key, rulesData, signature.Signature)
			if err != nil {
				// Undecodable signature, no key will accept it.
				break
			}
			if ok {
				verified[signature.UserID] = struct{}{}
				break
			}
		}
	}

	if len(verified) < minValidSignatures {
		return &model.IntegrityError{
			Kind:     model.InsufficientSignatures,
			Message:  fmt.Sprintf("found %d valid distinct SuperAdmin signatures, need %d", len(verified), minValidSignatures),
			Found:    len(verified),
			Required: minValidSignatures,
		}
	}
	return nil
}

// VerifyAndDecodeRulesContainer verifies the SuperAdmin signatures over a
// base64-encoded rules container and decodes it. The signature check runs
// on the raw container bytes; decoding only happens once they are trusted.
func VerifyAndDecodeRulesContainer(rulesContainerB64, rulesSignaturesB64 string, superAdminKeys []*ecdsa.PublicKey, minValidSignatures int, containerDecoder RulesContainerDecoder, signaturesDecoder UserSignaturesDecoder) (*model.DecodedRulesContainer, error) {
	signatures, err := signaturesDecoder(rulesSignaturesB64)
	if err != nil {
		return nil, err
	}

	rulesData, err := DecodeBase64(rulesContainerB64)
	if err != nil {
		return nil, &model.IntegrityError{
			Kind:    model.MalformedContainer,
			Message: fmt.Sprintf("rules container is not valid base64: %v", err),
		}
	}

	if err := VerifyGovernanceRulesSignatures(rulesData, signatures, superAdminKeys, minValidSignatures); err != nil {
		return nil, err
	}

	return containerDecoder(rulesContainerB64)
}
