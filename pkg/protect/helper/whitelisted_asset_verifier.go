package helper

import (
	"crypto/ecdsa"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// WhitelistedAssetVerifier checks whitelisted asset envelopes against
// SuperAdmin-signed governance rules.
type WhitelistedAssetVerifier struct {
	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int
}

// NewWhitelistedAssetVerifier returns a verifier trusting the given
// SuperAdmin keys and requiring minValidSignatures distinct signatures on
// every rules container.
func NewWhitelistedAssetVerifier(superAdminKeys []*ecdsa.PublicKey, minValidSignatures int) *WhitelistedAssetVerifier {
	return &WhitelistedAssetVerifier{
		superAdminKeys:     superAdminKeys,
		minValidSignatures: minValidSignatures,
	}
}

// AssetVerificationResult carries the outputs of a successful asset
// verification. The verified asset is rebuilt from the signed payload
// alone.
type AssetVerificationResult struct {
	RulesContainer *model.DecodedRulesContainer
	VerifiedAsset  *model.WhitelistedAsset
	VerifiedHash   string
}

// VerifyWhitelistedAsset runs the full verification chain on an asset
// envelope. Contract address rules are resolved on the payload's
// blockchain and network. The optional verifiedContainer works as in
// VerifyWhitelistedAddress.
func (v *WhitelistedAssetVerifier) VerifyWhitelistedAsset(envelope *model.WhitelistedAssetEnvelope, containerDecoder RulesContainerDecoder, signaturesDecoder UserSignaturesDecoder, verifiedContainer ...*model.DecodedRulesContainer) (*AssetVerificationResult, error) {
	if envelope == nil {
		return nil, &model.ValidationError{Message: "whitelisted asset envelope cannot be nil"}
	}

	if err := VerifyMetadataHash(envelope.Metadata); err != nil {
		return nil, err
	}

	container, err := trustedContainer(envelope.RulesContainer, envelope.RulesSignatures, v.superAdminKeys, v.minValidSignatures, containerDecoder, signaturesDecoder, verifiedContainer)
	if err != nil {
		return nil, err
	}

	asset, err := ParseWhitelistedAssetFromJSON(envelope.Metadata.PayloadAsString)
	if err != nil {
		return nil, err
	}
	rule, err := ResolveContractAddressWhitelistingRule(container, asset.Blockchain, asset.Network)
	if err != nil {
		return nil, err
	}

	if envelope.SignedContractAddress == nil || len(envelope.SignedContractAddress.Signatures) == 0 {
		return nil, &model.IntegrityError{
			Kind:    model.NoSignatures,
			Message: "whitelisted asset envelope carries no approval signatures",
		}
	}
	covering := SignaturesCoveringHash(envelope.SignedContractAddress.Signatures, envelope.Metadata.Hash)
	ruleKey := asset.Blockchain + "/" + asset.Network
	if err := VerifyParallelThresholds(container, rule.ParallelThresholds, covering, envelope.Metadata.Hash, ruleKey); err != nil {
		return nil, err
	}

	return &AssetVerificationResult{
		RulesContainer: container,
		VerifiedAsset:  asset,
		VerifiedHash:   envelope.Metadata.Hash,
	}, nil
}
