package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		Host:       server.URL,
		APIKey:     "test-api-key",
		APISecret:  "test-api-secret",
		HTTPClient: server.Client(),
		UserAgent:  "protect-sdk-go-test",
	})
	require.NoError(t, err)
	return client
}

// expectedSignature recomputes the request HMAC the way the platform
// authenticates it.
func expectedSignature(secret string, r *http.Request, body []byte) string {
	bodyHash := sha256.Sum256(body)
	payload := strings.Join([]string{
		r.Method,
		r.URL.RequestURI(),
		r.Header.Get(headerNonce),
		r.Header.Get(headerTimestamp),
		hex.EncodeToString(bodyHash[:]),
	}, "\n")
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestRequestSigning(t *testing.T) {
	var seen *http.Request
	var seenBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = r.Clone(context.Background())
		seenBody = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.GetRules(context.Background())
	require.NoError(t, err)
	require.NotNil(t, seen)

	assert.Equal(t, "/api/rest/v1/rules", seen.URL.Path)
	assert.Equal(t, "test-api-key", seen.Header.Get(headerAPIKey))
	assert.Equal(t, "protect-sdk-go-test", seen.Header.Get("User-Agent"))
	assert.NotEmpty(t, seen.Header.Get(headerNonce))
	assert.NotEmpty(t, seen.Header.Get(headerTimestamp))
	assert.Equal(t,
		expectedSignature("test-api-secret", seen, seenBody),
		seen.Header.Get(headerSignature))
}

func TestRequestSigningCoversBody(t *testing.T) {
	var seen *http.Request
	var seenBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = r.Clone(context.Background())
		seenBody = body
		w.WriteHeader(http.StatusOK)
	})

	err := client.ApproveRequests(context.Background(), &ApproveRequestsRequest{
		IDs:       []string{"1", "2"},
		Signature: "c2lnbmF0dXJl",
	})
	require.NoError(t, err)
	require.NotNil(t, seen)

	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	assert.NotEmpty(t, seenBody)
	assert.Equal(t,
		expectedSignature("test-api-secret", seen, seenBody),
		seen.Header.Get(headerSignature))
}

func TestNonceChangesPerRequest(t *testing.T) {
	var nonces []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		nonces = append(nonces, r.Header.Get(headerNonce))
		_, _ = w.Write([]byte(`{}`))
	})

	for i := 0; i < 3; i++ {
		_, err := client.GetRules(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, nonces, 3)
	assert.NotEqual(t, nonces[0], nonces[1])
	assert.NotEqual(t, nonces[1], nonces[2])
}

func TestNewNormalizesHost(t *testing.T) {
	client, err := New(Config{Host: "protect.example.com", APIKey: "k", APISecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, "https://protect.example.com", client.baseURL.String())

	client, err = New(Config{Host: "https://protect.example.com/", APIKey: "k", APISecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, "https://protect.example.com", client.baseURL.String())

	_, err = New(Config{})
	require.Error(t, err)
}

func TestStatusErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":5,"message":"whitelisted address not found","details":[]}`))
	})

	_, err := client.GetWhitelistedAddress(context.Background(), "42")
	require.Error(t, err)

	apiErr := &Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, codes.NotFound, apiErr.Code)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Equal(t, "whitelisted address not found", apiErr.Message)
}

func TestPlainTextErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})

	_, err := client.GetRules(context.Background())
	require.Error(t, err)

	apiErr := &Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, codes.Unknown, apiErr.Code)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Message, "upstream unavailable")
}

func TestErrorStatusCodeFallback(t *testing.T) {
	withTransport := &Error{HTTPStatus: http.StatusConflict, Code: codes.NotFound}
	assert.Equal(t, http.StatusConflict, withTransport.StatusCode())

	codeOnly := &Error{Code: codes.NotFound}
	assert.Equal(t, http.StatusNotFound, codeOnly.StatusCode())
}
