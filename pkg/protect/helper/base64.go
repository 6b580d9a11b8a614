// Package helper implements the verification pipeline of the SDK:
// governance rules signature checks, whitelisting rule resolution,
// signature threshold evaluation, payload parsing and request approval
// signing. Helpers never trust server-supplied bytes before checking them.
package helper

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// DecodeBase64 decodes standard base64 data.
func DecodeBase64(data string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}
	return decoded, nil
}

// EncodeBase64 encodes data as standard base64.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// ConstantTimeCompare reports whether two strings are equal without
// leaking the position of the first difference. Inputs of different
// lengths are never equal.
func ConstantTimeCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
