// Package integration holds tests that run against a live platform
// tenant. They are skipped unless PROTECT_TEST_INTEGRATION is set.
//
// Configuration comes from the environment:
//
//	PROTECT_TEST_INTEGRATION      enables the tests
//	PROTECT_TEST_HOST             platform host, scheme optional
//	PROTECT_TEST_API_KEY          API key
//	PROTECT_TEST_API_SECRET       API secret
//	PROTECT_TEST_SUPERADMIN_KEYS  comma-separated SuperAdmin public keys,
//	                              each either base64-encoded PEM or plain PEM
//	PROTECT_TEST_MIN_SIGNATURES   minimum valid signatures, default 1
package integration

import (
	"encoding/base64"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect"
)

// DefaultSuperAdminKeysPEM holds the SuperAdmin public keys of the test
// tenant, loaded from PROTECT_TEST_SUPERADMIN_KEYS.
var DefaultSuperAdminKeysPEM = loadSuperAdminKeys()

// DefaultMinValidSignatures is the signature threshold used by the test
// client, loaded from PROTECT_TEST_MIN_SIGNATURES.
var DefaultMinValidSignatures = loadMinValidSignatures()

func loadSuperAdminKeys() []string {
	raw := os.Getenv("PROTECT_TEST_SUPERADMIN_KEYS")
	if raw == "" {
		return nil
	}
	var keys []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		// base64 keeps a multi-line PEM block inside a single
		// environment variable; plain PEM is accepted as well.
		if decoded, err := base64.StdEncoding.DecodeString(entry); err == nil {
			keys = append(keys, string(decoded))
			continue
		}
		keys = append(keys, entry)
	}
	return keys
}

func loadMinValidSignatures() int {
	raw := os.Getenv("PROTECT_TEST_MIN_SIGNATURES")
	if raw == "" {
		return 1
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return value
}

// GetConfig returns the host and credentials of the test tenant.
func GetConfig() (host, apiKey, apiSecret string) {
	return os.Getenv("PROTECT_TEST_HOST"),
		os.Getenv("PROTECT_TEST_API_KEY"),
		os.Getenv("PROTECT_TEST_API_SECRET")
}

func skipIfNotIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("PROTECT_TEST_INTEGRATION") == "" {
		t.Skip("Skipping integration test, set PROTECT_TEST_INTEGRATION=1 to run")
	}
}

// getTestClient builds a client without rules container verification.
func getTestClient(t *testing.T) *protect.Client {
	t.Helper()
	host, apiKey, apiSecret := GetConfig()
	if host == "" || apiKey == "" || apiSecret == "" {
		t.Skip("PROTECT_TEST_HOST, PROTECT_TEST_API_KEY and PROTECT_TEST_API_SECRET must be set")
	}

	client, err := protect.NewClient(host,
		protect.WithCredentials(apiKey, apiSecret),
		protect.WithMinValidSignatures(0),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

// getTestClientWithVerification builds a client that verifies rules
// containers against the configured SuperAdmin keys.
func getTestClientWithVerification(t *testing.T) *protect.Client {
	t.Helper()
	host, apiKey, apiSecret := GetConfig()
	if host == "" || apiKey == "" || apiSecret == "" {
		t.Skip("PROTECT_TEST_HOST, PROTECT_TEST_API_KEY and PROTECT_TEST_API_SECRET must be set")
	}
	if len(DefaultSuperAdminKeysPEM) == 0 {
		t.Skip("PROTECT_TEST_SUPERADMIN_KEYS must be set for verification tests")
	}

	client, err := protect.NewClient(host,
		protect.WithCredentials(apiKey, apiSecret),
		protect.WithSuperAdminKeysPEM(DefaultSuperAdminKeysPEM),
		protect.WithMinValidSignatures(DefaultMinValidSignatures),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}
