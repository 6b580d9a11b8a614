// Package api implements the REST transport of the SDK. Replies follow the
// platform's gRPC-gateway conventions: 64-bit integers travel as JSON
// strings and error bodies are google.rpc.Status messages.
package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "protect/api")

const (
	basePath       = "/api/rest/v1"
	defaultTimeout = 30 * time.Second

	headerAPIKey    = "X-API-Key"
	headerNonce     = "X-API-Nonce"
	headerTimestamp = "X-API-Timestamp"
	headerSignature = "X-API-Signature"
)

// Config holds the settings of a transport client.
type Config struct {
	// Host is the platform endpoint. A bare host name is reached over
	// https.
	Host string
	// APIKey and APISecret authenticate every call.
	APIKey    string
	APISecret string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// UserAgent is sent with every call when set.
	UserAgent string
}

// Client is the HTTP client for the platform REST API. All calls are
// authenticated with an HMAC over the request.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	userAgent  string
}

// New creates a transport client for the given configuration.
func New(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, errors.New("host is required")
	}
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	baseURL, err := url.Parse(host)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid host %q", cfg.Host)
	}
	baseURL.Path = strings.TrimSuffix(baseURL.Path, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
	}, nil
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// do executes one API call. in is encoded as the JSON request body when
// non-nil, out decodes the reply body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
	}

	endpoint := c.baseURL.String() + basePath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	c.sign(req, body)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}
	log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("API call completed")

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "failed to decode response body")
		}
	}
	return nil
}

// sign authenticates the request. The signature is an HMAC-SHA256 over the
// method, the request URI, a fresh nonce, a unix timestamp and the hex
// SHA-256 of the body, joined by newlines.
func (c *Client) sign(req *http.Request, body []byte) {
	nonce := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	bodyHash := sha256.Sum256(body)
	payload := strings.Join([]string{
		req.Method,
		req.URL.RequestURI(),
		nonce,
		timestamp,
		hex.EncodeToString(bodyHash[:]),
	}, "\n")

	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(payload))

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerNonce, nonce)
	req.Header.Set(headerTimestamp, timestamp)
	req.Header.Set(headerSignature, base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}
