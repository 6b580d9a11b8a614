package service

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

func generateKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

// governanceFixture bundles a signed rules container with the SuperAdmin
// key that signed it and the approver key its rules trust.
type governanceFixture struct {
	superAdmin    *ecdsa.PrivateKey
	user          *ecdsa.PrivateKey
	containerB64  string
	signaturesB64 string
}

func newGovernanceFixture(t *testing.T) *governanceFixture {
	t.Helper()
	fixture := &governanceFixture{
		superAdmin: generateKey(t),
		user:       generateKey(t),
	}

	userPEM, err := crypto.EncodePublicKeyPEM(&fixture.user.PublicKey)
	require.NoError(t, err)

	threshold := []*model.SequentialThresholds{
		{Thresholds: []*model.GroupThreshold{{GroupID: "treasury", MinimumSignatures: 1}}},
	}
	container := &model.DecodedRulesContainer{
		Users: []*model.RuleUser{
			{ID: "user1@bank.com", Roles: []string{"USER"}, PublicKeyPEM: userPEM, PublicKey: &fixture.user.PublicKey},
		},
		Groups: []*model.RuleGroup{
			{ID: "treasury", UserIDs: []string{"user1@bank.com"}},
		},
		AddressWhitelistingRules: []*model.AddressWhitelistingRules{
			{Currency: "ALGO", Network: "mainnet", ParallelThresholds: threshold},
		},
		ContractAddressWhitelistingRules: []*model.ContractAddressWhitelistingRules{
			{Blockchain: "ETH", Network: "mainnet", ParallelThresholds: threshold},
		},
	}

	fixture.containerB64 = mapper.RulesContainerToBase64(container)
	fixture.signaturesB64 = signContainer(t, fixture.containerB64, "superadmin1@bank.com", fixture.superAdmin)
	return fixture
}

// signContainer signs the decoded container bytes and encodes the result
// as the platform's base64 signature blob.
func signContainer(t *testing.T, containerB64, userID string, key *ecdsa.PrivateKey) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(containerB64)
	require.NoError(t, err)
	signature, err := crypto.SignData(key, raw)
	require.NoError(t, err)

	doc, err := json.Marshal([]map[string]string{
		{"userId": userID, "signature": signature},
	})
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(doc)
}

func (f *governanceFixture) config() *VerificationConfig {
	return &VerificationConfig{
		SuperAdminKeys:     []*ecdsa.PublicKey{&f.superAdmin.PublicKey},
		MinValidSignatures: 1,
	}
}

// rulesDTO is the governance rules reply matching the fixture container.
func (f *governanceFixture) rulesDTO() *api.RulesDTO {
	return &api.RulesDTO{
		TenantID:        "6",
		RulesContainer:  f.containerB64,
		RulesSignatures: f.signaturesB64,
	}
}

// approvalSignature signs the given hash with the fixture's approver key.
func (f *governanceFixture) approvalSignature(t *testing.T, hash string) api.WhitelistSignatureDTO {
	t.Helper()
	signature, err := crypto.SignData(f.user, []byte(hash))
	require.NoError(t, err)
	return api.WhitelistSignatureDTO{
		UserSignature: &api.WhitelistUserSignatureDTO{
			UserID:    "user1@bank.com",
			Signature: signature,
		},
		Hashes: []string{hash},
	}
}

const addressPayload = `{"currency":"ALGO","network":"mainnet","address":"XYZ","label":"treasury counterparty"}`

// addressDTO builds an approved address record whose signatures satisfy
// the fixture rules. inlineContainer controls whether the record carries
// its own rules container.
func (f *governanceFixture) addressDTO(t *testing.T, id int64, inlineContainer bool) *api.WhitelistedAddressDTO {
	t.Helper()
	hash := crypto.CalculateHexHash(addressPayload)
	dto := &api.WhitelistedAddressDTO{
		ID:         api.Int64String(id),
		Status:     "APPROVED",
		Blockchain: "ALGO",
		Network:    "mainnet",
		Address:    "XYZ",
		Metadata: &api.MetadataDTO{
			Hash:            hash,
			PayloadAsString: addressPayload,
		},
		SignedAddress: &api.SignedWhitelistedAddressDTO{
			Signatures: []api.WhitelistSignatureDTO{f.approvalSignature(t, hash)},
		},
	}
	if inlineContainer {
		dto.RulesContainer = f.containerB64
		dto.RulesSignatures = f.signaturesB64
	}
	return dto
}

const assetPayload = `{"blockchain":"ETH","network":"mainnet","contractAddress":"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48","name":"USD Coin","symbol":"USDC","decimals":6}`

// contractDTO builds an approved asset record whose signatures satisfy the
// fixture rules.
func (f *governanceFixture) contractDTO(t *testing.T, id int64, inlineContainer bool) *api.WhitelistedContractDTO {
	t.Helper()
	hash := crypto.CalculateHexHash(assetPayload)
	dto := &api.WhitelistedContractDTO{
		ID:              api.Int64String(id),
		Status:          "APPROVED",
		Blockchain:      "ETH",
		Network:         "mainnet",
		ContractAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Metadata: &api.MetadataDTO{
			Hash:            hash,
			PayloadAsString: assetPayload,
		},
		SignedContractAddress: &api.SignedContractAddressDTO{
			Signatures: []api.WhitelistSignatureDTO{f.approvalSignature(t, hash)},
		},
	}
	if inlineContainer {
		dto.RulesContainer = f.containerB64
		dto.RulesSignatures = f.signaturesB64
	}
	return dto
}

func newTestAPIClient(t *testing.T, mux *http.ServeMux) *api.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := api.New(api.Config{
		Host:       server.URL,
		APIKey:     "test-api-key",
		APISecret:  "test-api-secret",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
