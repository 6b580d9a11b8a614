package protect

import (
	"crypto/ecdsa"
	"net/http"

	"github.com/pkg/errors"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
)

// clientSettings collects option values before the client is built.
type clientSettings struct {
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	userAgent  string

	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int
}

// Option configures a client at construction time.
type Option func(*clientSettings) error

// WithCredentials sets the API key pair used to sign outgoing requests.
func WithCredentials(apiKey, apiSecret string) Option {
	return func(s *clientSettings) error {
		s.apiKey = apiKey
		s.apiSecret = apiSecret
		return nil
	}
}

// WithHTTPClient replaces the default HTTP client, for example to set a
// custom timeout or a proxy.
func WithHTTPClient(client *http.Client) Option {
	return func(s *clientSettings) error {
		s.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(s *clientSettings) error {
		s.userAgent = userAgent
		return nil
	}
}

// WithSuperAdminKeysPEM sets the trusted SuperAdmin public keys, as
// PEM-encoded ECDSA keys. Rules containers must be signed by these keys
// before the client acts on them. A key that does not parse fails client
// construction; it must not silently weaken verification.
func WithSuperAdminKeysPEM(pemKeys []string) Option {
	return func(s *clientSettings) error {
		keys := make([]*ecdsa.PublicKey, 0, len(pemKeys))
		for i, pemKey := range pemKeys {
			key, err := crypto.DecodePublicKeyPEM(pemKey)
			if err != nil {
				return errors.Wrapf(err, "invalid SuperAdmin key at index %d", i)
			}
			keys = append(keys, key)
		}
		s.superAdminKeys = keys
		return nil
	}
}

// WithMinValidSignatures sets how many distinct SuperAdmin signatures a
// rules container needs to be trusted. Zero or less disables container
// signature verification. The default is 1.
func WithMinValidSignatures(minValidSignatures int) Option {
	return func(s *clientSettings) error {
		s.minValidSignatures = minValidSignatures
		return nil
	}
}
