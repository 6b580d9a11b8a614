package helper

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

func generateTestKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key
}

func signBytes(t *testing.T, key *ecdsa.PrivateKey, data []byte) string {
	t.Helper()
	signature, err := crypto.SignData(key, data)
	if err != nil {
		t.Fatalf("failed to sign data: %v", err)
	}
	return signature
}

func publicKeyPEM(t *testing.T, key *ecdsa.PrivateKey) string {
	t.Helper()
	pemData, err := crypto.EncodePublicKeyPEM(&key.PublicKey)
	if err != nil {
		t.Fatalf("failed to encode public key: %v", err)
	}
	return pemData
}

func asIntegrityError(t *testing.T, err error) *model.IntegrityError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var integrityErr *model.IntegrityError
	if !errors.As(err, &integrityErr) {
		t.Fatalf("expected IntegrityError, got %T: %v", err, err)
	}
	return integrityErr
}

// testUser pairs a rule user id with its signing key. Tests keep users in
// slices so the container order is deterministic.
type testUser struct {
	id  string
	key *ecdsa.PrivateKey
}

func containerWithUsers(t *testing.T, users []testUser, groups []*model.RuleGroup) *model.DecodedRulesContainer {
	t.Helper()
	container := &model.DecodedRulesContainer{Groups: groups}
	for _, user := range users {
		container.Users = append(container.Users, &model.RuleUser{
			ID:           user.id,
			PublicKeyPEM: publicKeyPEM(t, user.key),
			PublicKey:    &user.key.PublicKey,
			Roles:        []string{"USER"},
		})
	}
	return container
}

// approvalSignature builds a whitelist signature by the given user over
// signedHash. The covered hash list defaults to the signed hash.
func approvalSignature(t *testing.T, userID string, key *ecdsa.PrivateKey, signedHash string, coveredHashes ...string) model.WhitelistSignature {
	t.Helper()
	if len(coveredHashes) == 0 {
		coveredHashes = []string{signedHash}
	}
	return model.WhitelistSignature{
		UserSignature: &model.WhitelistUserSignature{
			UserID:    userID,
			Signature: signBytes(t, key, []byte(signedHash)),
		},
		Hashes: coveredHashes,
	}
}

// encodeSignaturesJSON encodes rule user signatures in the JSON blob form
// the platform serves.
func encodeSignaturesJSON(t *testing.T, signatures []*model.RuleUserSignature) string {
	t.Helper()
	type entry struct {
		UserID    string `json:"userId"`
		Signature string `json:"signature"`
	}
	entries := make([]entry, 0, len(signatures))
	for _, signature := range signatures {
		entries = append(entries, entry{UserID: signature.UserID, Signature: signature.Signature})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("failed to marshal signatures: %v", err)
	}
	return base64.StdEncoding.EncodeToString(data)
}

// buildEnvelopeGovernance signs a rules container with the given SuperAdmin
// keys and returns the base64 forms the platform would serve.
func buildEnvelopeGovernance(t *testing.T, containerB64 string, superAdmins map[string]*ecdsa.PrivateKey) string {
	t.Helper()
	rulesData, err := base64.StdEncoding.DecodeString(containerB64)
	if err != nil {
		t.Fatalf("failed to decode container base64: %v", err)
	}
	var signatures []*model.RuleUserSignature
	for userID, key := range superAdmins {
		signatures = append(signatures, &model.RuleUserSignature{
			UserID:    userID,
			Signature: signBytes(t, key, rulesData),
		})
	}
	return encodeSignaturesJSON(t, signatures)
}
