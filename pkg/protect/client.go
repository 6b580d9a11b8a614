// Package protect is the Go client of the Taurus-PROTECT platform. It
// retrieves governance rules, whitelisted addresses, whitelisted assets
// and requests over REST, and verifies whitelisting material against
// SuperAdmin-signed governance rules before handing it out.
//
// A minimal client with verification enabled:
//
//	client, err := protect.NewClient("protect.example.com",
//		protect.WithCredentials(apiKey, apiSecret),
//		protect.WithSuperAdminKeysPEM(superAdminKeys),
//		protect.WithMinValidSignatures(2),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	envelope, err := client.WhitelistedAddresses().GetWhitelistedAddress(ctx, id)
//
// Envelope fields coming straight from the platform are unverified
// hints; only the values behind WhitelistedAddress, WhitelistedAsset and
// DecodedRulesContainer accessors have been checked against the
// governance rules.
package protect

import (
	"crypto/ecdsa"

	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/service"
)

// Client is the entry point of the SDK. It is safe for concurrent use;
// all services of one client share a single rules container cache.
type Client struct {
	api *api.Client

	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int

	governanceRules      *service.GovernanceRulesService
	whitelistedAddresses *service.WhitelistedAddressService
	whitelistedAssets    *service.WhitelistedAssetService
	requests             *service.RequestService
}

// NewClient builds a client for the platform at host. The host may be
// given with or without a scheme; a bare host is dialed over HTTPS.
// Without WithSuperAdminKeysPEM the client still checks payload hashes
// and approval signatures, but trusts rules containers as delivered.
func NewClient(host string, opts ...Option) (*Client, error) {
	settings := clientSettings{minValidSignatures: 1}
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return nil, err
		}
	}

	apiClient, err := api.New(api.Config{
		Host:       host,
		APIKey:     settings.apiKey,
		APISecret:  settings.apiSecret,
		HTTPClient: settings.httpClient,
		UserAgent:  settings.userAgent,
	})
	if err != nil {
		return nil, err
	}

	config := &service.VerificationConfig{
		SuperAdminKeys:     settings.superAdminKeys,
		MinValidSignatures: settings.minValidSignatures,
	}
	governanceRules := service.NewGovernanceRulesService(apiClient, config)

	return &Client{
		api:                  apiClient,
		superAdminKeys:       settings.superAdminKeys,
		minValidSignatures:   settings.minValidSignatures,
		governanceRules:      governanceRules,
		whitelistedAddresses: service.NewWhitelistedAddressService(apiClient, governanceRules, config),
		whitelistedAssets:    service.NewWhitelistedAssetService(apiClient, governanceRules, config),
		requests:             service.NewRequestService(apiClient),
	}, nil
}

// GovernanceRules returns the governance rules service.
func (c *Client) GovernanceRules() *service.GovernanceRulesService {
	return c.governanceRules
}

// WhitelistedAddresses returns the whitelisted address service.
func (c *Client) WhitelistedAddresses() *service.WhitelistedAddressService {
	return c.whitelistedAddresses
}

// WhitelistedAssets returns the whitelisted asset service.
func (c *Client) WhitelistedAssets() *service.WhitelistedAssetService {
	return c.whitelistedAssets
}

// Requests returns the request service.
func (c *Client) Requests() *service.RequestService {
	return c.requests
}

// SuperAdminKeys returns the trusted SuperAdmin public keys the client
// was built with.
func (c *Client) SuperAdminKeys() []*ecdsa.PublicKey {
	return c.superAdminKeys
}

// MinValidSignatures returns how many distinct SuperAdmin signatures a
// rules container needs before the client trusts it.
func (c *Client) MinValidSignatures() int {
	return c.minValidSignatures
}

// Close releases idle connections held by the client. The client must
// not be used afterwards.
func (c *Client) Close() error {
	c.api.Close()
	return nil
}
