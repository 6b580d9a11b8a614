package helper

import (
	"crypto/ecdsa"
	"testing"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/testdata"
)

// assetScenario mirrors addressScenario for whitelisted assets, with a
// single contract rule for ETH/mainnet and the real USDC payload.
type assetScenario struct {
	adminKey *ecdsa.PrivateKey
	userKey  *ecdsa.PrivateKey
	hash     string
	envelope *model.WhitelistedAssetEnvelope
}

func newAssetScenario(t *testing.T) *assetScenario {
	t.Helper()
	adminKey := generateTestKey(t)
	userKey := generateTestKey(t)

	container := &model.DecodedRulesContainer{
		Users: []*model.RuleUser{
			{ID: "u1", PublicKeyPEM: publicKeyPEM(t, userKey), PublicKey: &userKey.PublicKey, Roles: []string{"USER"}},
		},
		Groups: []*model.RuleGroup{
			{ID: "team1", UserIDs: []string{"u1"}},
		},
		ContractAddressWhitelistingRules: []*model.ContractAddressWhitelistingRules{
			{
				Blockchain:         "ETH",
				Network:            "mainnet",
				ParallelThresholds: []*model.SequentialThresholds{sequential(groupThreshold("team1", 1))},
			},
		},
	}

	hash := testdata.RealAssetMetadataHash
	containerB64 := mapper.RulesContainerToBase64(container)

	envelope := &model.WhitelistedAssetEnvelope{
		ID:       4711,
		Metadata: &model.Metadata{Hash: hash, PayloadAsString: testdata.RealAssetPayloadAsString},
		SignedContractAddress: &model.SignedContractAddress{
			Signatures: []model.WhitelistSignature{approvalSignature(t, "u1", userKey, hash)},
		},
		RulesContainer:  containerB64,
		RulesSignatures: buildEnvelopeGovernance(t, containerB64, map[string]*ecdsa.PrivateKey{"admin@bank.com": adminKey}),
	}

	return &assetScenario{adminKey: adminKey, userKey: userKey, hash: hash, envelope: envelope}
}

func (s *assetScenario) verifier() *WhitelistedAssetVerifier {
	return NewWhitelistedAssetVerifier([]*ecdsa.PublicKey{&s.adminKey.PublicKey}, 1)
}

func TestVerifyWhitelistedAssetThresholdMet(t *testing.T) {
	s := newAssetScenario(t)

	result, err := s.verifier().VerifyWhitelistedAsset(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	if err != nil {
		t.Fatalf("VerifyWhitelistedAsset() unexpected error: %v", err)
	}

	asset := result.VerifiedAsset
	if asset.Blockchain != "ETH" || asset.Network != "mainnet" {
		t.Errorf("asset key = %s/%s, want ETH/mainnet", asset.Blockchain, asset.Network)
	}
	if asset.Symbol != "USDC" || asset.Decimals != 6 {
		t.Errorf("asset = %+v, want USDC with 6 decimals", asset)
	}
	if result.VerifiedHash != s.hash {
		t.Errorf("VerifiedHash = %s, want %s", result.VerifiedHash, s.hash)
	}
}

// TestVerifyWhitelistedAssetNoApplicableRule verifies that an asset whose
// payload names a blockchain without a contract rule is rejected.
func TestVerifyWhitelistedAssetNoApplicableRule(t *testing.T) {
	s := newAssetScenario(t)

	payload := `{"blockchain":"MATIC","network":"mainnet","contractAddress":"0x001","name":"Token","symbol":"TOK","decimals":18}`
	hash := crypto.CalculateHexHash(payload)
	s.envelope.Metadata = &model.Metadata{Hash: hash, PayloadAsString: payload}
	s.envelope.SignedContractAddress.Signatures = []model.WhitelistSignature{
		approvalSignature(t, "u1", s.userKey, hash),
	}

	_, err := s.verifier().VerifyWhitelistedAsset(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	integrityErr := asIntegrityError(t, err)
	if integrityErr.Kind != model.NoApplicableRule {
		t.Errorf("expected kind %s, got %s", model.NoApplicableRule, integrityErr.Kind)
	}
	if integrityErr.RuleKey != "MATIC/mainnet" {
		t.Errorf("expected rule key MATIC/mainnet, got %q", integrityErr.RuleKey)
	}
}

func TestVerifyWhitelistedAssetHashMismatch(t *testing.T) {
	s := newAssetScenario(t)
	s.envelope.Metadata.Hash = testdata.RealMetadataHash // hash of a different payload

	_, err := s.verifier().VerifyWhitelistedAsset(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	integrityErr := asIntegrityError(t, err)
	if integrityErr.Kind != model.HashMismatch {
		t.Errorf("expected kind %s, got %s", model.HashMismatch, integrityErr.Kind)
	}
}

func TestVerifyWhitelistedAssetPreVerifiedContainer(t *testing.T) {
	s := newAssetScenario(t)

	preVerified, err := VerifyAndDecodeRulesContainer(s.envelope.RulesContainer, s.envelope.RulesSignatures, []*ecdsa.PublicKey{&s.adminKey.PublicKey}, 1, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	if err != nil {
		t.Fatalf("VerifyAndDecodeRulesContainer() unexpected error: %v", err)
	}

	s.envelope.RulesContainer = ""
	s.envelope.RulesSignatures = ""

	result, err := s.verifier().VerifyWhitelistedAsset(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64, preVerified)
	if err != nil {
		t.Fatalf("VerifyWhitelistedAsset() unexpected error: %v", err)
	}
	if result.VerifiedAsset.ContractAddress != "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48" {
		t.Errorf("ContractAddress = %q", result.VerifiedAsset.ContractAddress)
	}
}
