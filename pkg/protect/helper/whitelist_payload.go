package helper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// whitelistAddressPayload mirrors the JSON document approvers sign for a
// whitelisted address. Numeric ids travel either as JSON numbers or as
// decimal strings, so they are parsed loosely.
type whitelistAddressPayload struct {
	Currency                string                 `json:"currency"`
	Network                 string                 `json:"network"`
	Address                 string                 `json:"address"`
	Memo                    string                 `json:"memo"`
	Label                   string                 `json:"label"`
	CustomerID              string                 `json:"customerId"`
	ContractType            string                 `json:"contractType"`
	AddressType             string                 `json:"addressType"`
	TnParticipantID         string                 `json:"tnParticipantID"`
	ExchangeAccountID       json.RawMessage        `json:"exchangeAccountId"`
	LinkedInternalAddresses []payloadLinkedAddress `json:"linkedInternalAddresses"`
	LinkedWallets           []payloadLinkedWallet  `json:"linkedWallets"`
}

type payloadLinkedAddress struct {
	ID    json.RawMessage `json:"id"`
	Label string          `json:"label"`
}

type payloadLinkedWallet struct {
	ID   json.RawMessage `json:"id"`
	Name string          `json:"name"`
	Path string          `json:"path"`
}

// ParseWhitelistedAddressFromJSON parses the signed address payload into
// the verified address value. The payload names the asset "currency"; it
// maps to the Blockchain field of the model.
func ParseWhitelistedAddressFromJSON(payload string) (*model.WhitelistedAddress, error) {
	var p whitelistAddressPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, &model.IntegrityError{
			Kind:    model.MalformedPayload,
			Message: fmt.Sprintf("whitelisted address payload is not valid JSON: %v", err),
		}
	}

	address := &model.WhitelistedAddress{
		Blockchain:      p.Currency,
		Network:         p.Network,
		Address:         p.Address,
		Memo:            p.Memo,
		Label:           p.Label,
		CustomerID:      p.CustomerID,
		ContractType:    p.ContractType,
		AddressType:     p.AddressType,
		TnParticipantID: p.TnParticipantID,
	}
	if id, ok := payloadInt64(p.ExchangeAccountID); ok {
		address.ExchangeAccountID = id
	}
	for _, linked := range p.LinkedInternalAddresses {
		entry := &model.InternalAddress{Label: linked.Label}
		if id, ok := payloadInt64(linked.ID); ok {
			entry.ID = id
		}
		address.LinkedInternalAddresses = append(address.LinkedInternalAddresses, entry)
	}
	for _, linked := range p.LinkedWallets {
		entry := &model.InternalWallet{Label: linked.Name, Path: linked.Path}
		if id, ok := payloadInt64(linked.ID); ok {
			entry.ID = id
		}
		address.LinkedWallets = append(address.LinkedWallets, entry)
	}
	return address, nil
}

// whitelistAssetPayload mirrors the JSON document approvers sign for a
// whitelisted asset.
type whitelistAssetPayload struct {
	Blockchain      string          `json:"blockchain"`
	Network         string          `json:"network"`
	ContractAddress string          `json:"contractAddress"`
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	Decimals        json.RawMessage `json:"decimals"`
}

// ParseWhitelistedAssetFromJSON parses the signed asset payload into the
// verified asset value.
func ParseWhitelistedAssetFromJSON(payload string) (*model.WhitelistedAsset, error) {
	var p whitelistAssetPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, &model.IntegrityError{
			Kind:    model.MalformedPayload,
			Message: fmt.Sprintf("whitelisted asset payload is not valid JSON: %v", err),
		}
	}

	asset := &model.WhitelistedAsset{
		Blockchain:      p.Blockchain,
		Network:         p.Network,
		ContractAddress: p.ContractAddress,
		Name:            p.Name,
		Symbol:          p.Symbol,
	}
	if decimals, ok := payloadInt64(p.Decimals); ok {
		asset.Decimals = int(decimals)
	}
	return asset, nil
}

// payloadInt64 parses a payload integer that may travel as a JSON number
// or as a quoted decimal string. Empty, null and non-numeric values
// report false.
func payloadInt64(raw json.RawMessage) (int64, bool) {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return 0, false
	}
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
