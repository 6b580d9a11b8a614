package helper

import (
	"crypto/ecdsa"
	"errors"
	"strings"
	"testing"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/testdata"
)

// addressScenario bundles a fully signed whitelisted address envelope:
// one SuperAdmin signing the rules container, one approver in group team1
// covered by the ALGO/mainnet rule.
type addressScenario struct {
	adminKey *ecdsa.PrivateKey
	userKey  *ecdsa.PrivateKey
	payload  string
	hash     string
	envelope *model.WhitelistedAddressEnvelope
}

func newAddressScenario(t *testing.T) *addressScenario {
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
		AddressWhitelistingRules: []*model.AddressWhitelistingRules{
			{
				Currency:           "ALGO",
				Network:            "mainnet",
				ParallelThresholds: []*model.SequentialThresholds{sequential(groupThreshold("team1", 1))},
			},
		},
	}

	payload := `{"currency":"ALGO","network":"mainnet","address":"XYZ"}`
	hash := crypto.CalculateHexHash(payload)
	containerB64 := mapper.RulesContainerToBase64(container)

	envelope := &model.WhitelistedAddressEnvelope{
		ID: 36663,
		// Deliberately wrong hints; they must never reach the verified
		// value.
		Blockchain: "OTHER",
		Network:    "othernet",
		Metadata:   &model.Metadata{Hash: hash, PayloadAsString: payload},
		SignedAddress: &model.SignedWhitelistedAddress{
			Signatures: []model.WhitelistSignature{approvalSignature(t, "u1", userKey, hash)},
		},
		RulesContainer:  containerB64,
		RulesSignatures: buildEnvelopeGovernance(t, containerB64, map[string]*ecdsa.PrivateKey{"admin@bank.com": adminKey}),
	}

	return &addressScenario{
		adminKey: adminKey,
		userKey:  userKey,
		payload:  payload,
		hash:     hash,
		envelope: envelope,
	}
}

func (s *addressScenario) verifier() *WhitelistedAddressVerifier {
	return NewWhitelistedAddressVerifier([]*ecdsa.PublicKey{&s.adminKey.PublicKey}, 1)
}

// TestVerifyWhitelistedAddressThresholdMet runs the full pipeline on a
// correctly signed envelope and checks that the verified value comes from
// the payload alone.
func TestVerifyWhitelistedAddressThresholdMet(t *testing.T) {
	s := newAddressScenario(t)

	result, err := s.verifier().VerifyWhitelistedAddress(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	if err != nil {
		t.Fatalf("VerifyWhitelistedAddress() unexpected error: %v", err)
	}

	address := result.VerifiedAddress
	if address.Blockchain != "ALGO" {
		t.Errorf("Blockchain = %q, want ALGO (envelope hint must not leak)", address.Blockchain)
	}
	if address.Network != "mainnet" {
		t.Errorf("Network = %q, want mainnet", address.Network)
	}
	if address.Address != "XYZ" {
		t.Errorf("Address = %q, want XYZ", address.Address)
	}
	if result.VerifiedHash != s.hash {
		t.Errorf("VerifiedHash = %s, want %s", result.VerifiedHash, s.hash)
	}
	if result.RulesContainer == nil || result.RulesContainer.FindGroupByID("team1") == nil {
		t.Error("result is missing the decoded rules container")
	}
}

// TestVerifyWhitelistedAddressHashMismatch verifies that a wrong metadata
// hash fails before any rules work happens.
func TestVerifyWhitelistedAddressHashMismatch(t *testing.T) {
	s := newAddressScenario(t)
	s.envelope.Metadata = &model.Metadata{
		Hash:            strings.Repeat("0", 64),
		PayloadAsString: `{"currency":"ETH","network":"mainnet","address":"0xabc"}`,
	}

	decoderCalled := false
	containerDecoder := func(base64Data string) (*model.DecodedRulesContainer, error) {
		decoderCalled = true
		return mapper.RulesContainerFromBase64(base64Data)
	}
	signaturesDecoder := func(base64Data string) ([]*model.RuleUserSignature, error) {
		decoderCalled = true
		return mapper.UserSignaturesFromBase64(base64Data)
	}

	_, err := s.verifier().VerifyWhitelistedAddress(s.envelope, containerDecoder, signaturesDecoder)
	integrityErr := asIntegrityError(t, err)
	if integrityErr.Kind != model.HashMismatch {
		t.Errorf("expected kind %s, got %s", model.HashMismatch, integrityErr.Kind)
	}
	if decoderCalled {
		t.Error("decoders must not run after a hash mismatch")
	}
}

func TestVerifyWhitelistedAddressUntrustedGovernance(t *testing.T) {
	s := newAddressScenario(t)
	strangerKey := generateTestKey(t)
	s.envelope.RulesSignatures = buildEnvelopeGovernance(t, s.envelope.RulesContainer, map[string]*ecdsa.PrivateKey{"stranger": strangerKey})

	_, err := s.verifier().VerifyWhitelistedAddress(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	integrityErr := asIntegrityError(t, err)
	if integrityErr.Kind != model.InsufficientSignatures {
		t.Errorf("expected kind %s, got %s", model.InsufficientSignatures, integrityErr.Kind)
	}
}

// TestVerifyWhitelistedAddressPreVerifiedContainer verifies that a caller
// supplied container skips the per-envelope governance check.
func TestVerifyWhitelistedAddressPreVerifiedContainer(t *testing.T) {
	s := newAddressScenario(t)

	preVerified, err := VerifyAndDecodeRulesContainer(s.envelope.RulesContainer, s.envelope.RulesSignatures, []*ecdsa.PublicKey{&s.adminKey.PublicKey}, 1, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	if err != nil {
		t.Fatalf("VerifyAndDecodeRulesContainer() unexpected error: %v", err)
	}

	// Strip the inline governance data; the pre-verified container must
	// carry the verification on its own.
	s.envelope.RulesContainer = ""
	s.envelope.RulesSignatures = ""

	decoderCalled := false
	containerDecoder := func(base64Data string) (*model.DecodedRulesContainer, error) {
		decoderCalled = true
		return mapper.RulesContainerFromBase64(base64Data)
	}

	result, err := s.verifier().VerifyWhitelistedAddress(s.envelope, containerDecoder, mapper.UserSignaturesFromBase64, preVerified)
	if err != nil {
		t.Fatalf("VerifyWhitelistedAddress() unexpected error: %v", err)
	}
	if decoderCalled {
		t.Error("container decoder must not run when a pre-verified container is supplied")
	}
	if result.VerifiedAddress.Address != "XYZ" {
		t.Errorf("Address = %q, want XYZ", result.VerifiedAddress.Address)
	}
}

func TestVerifyWhitelistedAddressNoApprovalSignatures(t *testing.T) {
	s := newAddressScenario(t)
	s.envelope.SignedAddress = nil

	_, err := s.verifier().VerifyWhitelistedAddress(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	integrityErr := asIntegrityError(t, err)
	if integrityErr.Kind != model.NoSignatures {
		t.Errorf("expected kind %s, got %s", model.NoSignatures, integrityErr.Kind)
	}
}

func TestVerifyWhitelistedAddressSignatureCoversOtherHash(t *testing.T) {
	s := newAddressScenario(t)
	otherHash := strings.Repeat("f", 64)
	s.envelope.SignedAddress.Signatures = []model.WhitelistSignature{
		approvalSignature(t, "u1", s.userKey, otherHash),
	}

	_, err := s.verifier().VerifyWhitelistedAddress(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64)
	integrityErr := asIntegrityError(t, err)
	if integrityErr.Kind != model.ThresholdNotMet {
		t.Errorf("expected kind %s, got %s", model.ThresholdNotMet, integrityErr.Kind)
	}
}

func TestVerifyWhitelistedAddressNilEnvelope(t *testing.T) {
	s := newAddressScenario(t)

	var validationErr *model.ValidationError
	if _, err := s.verifier().VerifyWhitelistedAddress(nil, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64); !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for nil envelope, got %v", err)
	}

	s.envelope.Metadata = nil
	if _, err := s.verifier().VerifyWhitelistedAddress(s.envelope, mapper.RulesContainerFromBase64, mapper.UserSignaturesFromBase64); !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for nil metadata, got %v", err)
	}
}

func TestVerifyMetadataHashRealFixture(t *testing.T) {
	metadata := &model.Metadata{
		Hash:            testdata.RealMetadataHash,
		PayloadAsString: testdata.RealPayloadAsString,
	}
	if err := VerifyMetadataHash(metadata); err != nil {
		t.Errorf("VerifyMetadataHash() unexpected error: %v", err)
	}
}

func TestVerifyMetadataHashFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		hash    string
	}{
		{"wrong hash", testdata.RealPayloadAsString, strings.Repeat("0", 64)},
		{"empty hash", testdata.RealPayloadAsString, ""},
		{"empty payload", "", testdata.RealMetadataHash},
		{"modified payload", testdata.RealPayloadAsString + " ", testdata.RealMetadataHash},
		{"truncated hash", testdata.RealPayloadAsString, testdata.RealMetadataHash[:63]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyMetadataHash(&model.Metadata{Hash: tt.hash, PayloadAsString: tt.payload})
			integrityErr := asIntegrityError(t, err)
			if integrityErr.Kind != model.HashMismatch {
				t.Errorf("expected kind %s, got %s", model.HashMismatch, integrityErr.Kind)
			}
		})
	}
}
