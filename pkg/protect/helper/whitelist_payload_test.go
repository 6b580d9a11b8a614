package helper

import (
	"testing"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/testdata"
)

// TestParseWhitelistedAddressFromJSONRealPayload parses a payload captured
// from a live platform reply and checks the field mapping.
func TestParseWhitelistedAddressFromJSONRealPayload(t *testing.T) {
	if got := crypto.CalculateHexHash(testdata.RealPayloadAsString); got != testdata.RealMetadataHash {
		t.Fatalf("fixture hash = %s, want %s", got, testdata.RealMetadataHash)
	}

	address, err := ParseWhitelistedAddressFromJSON(testdata.RealPayloadAsString)
	if err != nil {
		t.Fatalf("ParseWhitelistedAddressFromJSON() unexpected error: %v", err)
	}

	if address.Blockchain != "ALGO" {
		t.Errorf("Blockchain = %q, want ALGO", address.Blockchain)
	}
	if address.Network != "" {
		t.Errorf("Network = %q, want empty", address.Network)
	}
	if address.Address != "P4QCJV2YYLAEULGLJQAW4XTU3EBOHWL5C46I5SPLH2H7AJEE367ZDACV5A" {
		t.Errorf("Address = %q", address.Address)
	}
	if address.AddressType != "individual" {
		t.Errorf("AddressType = %q, want individual", address.AddressType)
	}
	if address.Label != "TN_Bank ACC Cockroach_WTRTest" {
		t.Errorf("Label = %q", address.Label)
	}
	if address.TnParticipantID != "84dc35e3-0af8-4b6b-be75-785f4b149d16" {
		t.Errorf("TnParticipantID = %q", address.TnParticipantID)
	}
	// The empty exchangeAccountId string is dropped, not an error.
	if address.ExchangeAccountID != 0 {
		t.Errorf("ExchangeAccountID = %d, want 0", address.ExchangeAccountID)
	}
	if len(address.LinkedInternalAddresses) != 0 {
		t.Errorf("LinkedInternalAddresses = %v, want empty", address.LinkedInternalAddresses)
	}
}

func TestParseWhitelistedAddressFromJSONLinkedEntities(t *testing.T) {
	payload := `{"currency":"ETH","network":"mainnet","address":"0xabc","exchangeAccountId":99,` +
		`"linkedInternalAddresses":[{"id":"10","label":"client 0 ETH"},{"id":13}],` +
		`"linkedWallets":[{"id":7,"name":"treasury","path":"m/44/60/0"}]}`

	address, err := ParseWhitelistedAddressFromJSON(payload)
	if err != nil {
		t.Fatalf("ParseWhitelistedAddressFromJSON() unexpected error: %v", err)
	}

	if address.ExchangeAccountID != 99 {
		t.Errorf("ExchangeAccountID = %d, want 99", address.ExchangeAccountID)
	}
	if len(address.LinkedInternalAddresses) != 2 {
		t.Fatalf("LinkedInternalAddresses count = %d, want 2", len(address.LinkedInternalAddresses))
	}
	// Quoted and bare numeric ids both parse.
	if address.LinkedInternalAddresses[0].ID != 10 || address.LinkedInternalAddresses[0].Label != "client 0 ETH" {
		t.Errorf("linked address 0 = %+v", address.LinkedInternalAddresses[0])
	}
	if address.LinkedInternalAddresses[1].ID != 13 {
		t.Errorf("linked address 1 = %+v", address.LinkedInternalAddresses[1])
	}
	if len(address.LinkedWallets) != 1 {
		t.Fatalf("LinkedWallets count = %d, want 1", len(address.LinkedWallets))
	}
	wallet := address.LinkedWallets[0]
	if wallet.ID != 7 || wallet.Label != "treasury" || wallet.Path != "m/44/60/0" {
		t.Errorf("linked wallet = %+v", wallet)
	}
}

func TestParseWhitelistedAddressFromJSONMalformed(t *testing.T) {
	for _, payload := range []string{"", "not json", `["array"]`, `{"currency":`} {
		_, err := ParseWhitelistedAddressFromJSON(payload)
		integrityErr := asIntegrityError(t, err)
		if integrityErr.Kind != model.MalformedPayload {
			t.Errorf("payload %q: expected kind %s, got %s", payload, model.MalformedPayload, integrityErr.Kind)
		}
	}
}

func TestParseWhitelistedAssetFromJSONRealPayload(t *testing.T) {
	if got := crypto.CalculateHexHash(testdata.RealAssetPayloadAsString); got != testdata.RealAssetMetadataHash {
		t.Fatalf("fixture hash = %s, want %s", got, testdata.RealAssetMetadataHash)
	}

	asset, err := ParseWhitelistedAssetFromJSON(testdata.RealAssetPayloadAsString)
	if err != nil {
		t.Fatalf("ParseWhitelistedAssetFromJSON() unexpected error: %v", err)
	}

	if asset.Blockchain != "ETH" || asset.Network != "mainnet" {
		t.Errorf("asset key = %s/%s, want ETH/mainnet", asset.Blockchain, asset.Network)
	}
	if asset.ContractAddress != "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48" {
		t.Errorf("ContractAddress = %q", asset.ContractAddress)
	}
	if asset.Name != "USD Coin" || asset.Symbol != "USDC" {
		t.Errorf("asset name/symbol = %q/%q", asset.Name, asset.Symbol)
	}
	if asset.Decimals != 6 {
		t.Errorf("Decimals = %d, want 6", asset.Decimals)
	}
}

func TestParseWhitelistedAssetFromJSONQuotedDecimals(t *testing.T) {
	asset, err := ParseWhitelistedAssetFromJSON(`{"blockchain":"ETH","network":"mainnet","contractAddress":"0xabc","decimals":"18"}`)
	if err != nil {
		t.Fatalf("ParseWhitelistedAssetFromJSON() unexpected error: %v", err)
	}
	if asset.Decimals != 18 {
		t.Errorf("Decimals = %d, want 18", asset.Decimals)
	}

	// Missing optional fields stay zero-valued.
	if asset.Name != "" || asset.Symbol != "" {
		t.Errorf("expected empty name/symbol, got %q/%q", asset.Name, asset.Symbol)
	}
}

func TestPayloadInt64(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int64
		wantOK bool
	}{
		{"bare number", "42", 42, true},
		{"quoted number", `"42"`, 42, true},
		{"empty string", `""`, 0, false},
		{"null", "null", 0, false},
		{"absent", "", 0, false},
		{"non-numeric", `"abc"`, 0, false},
		{"negative", "-7", -7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := payloadInt64([]byte(tt.raw))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("payloadInt64(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
