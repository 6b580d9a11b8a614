// Package crypto provides the hashing and ECDSA primitives used by the
// verification helpers: SHA-256 hex digests, DER-encoded P-256 signatures
// transported as base64, and PEM or DER public key codecs.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// CalculateHexHash returns the lowercase hex-encoded SHA-256 digest of the
// payload string. The digest is computed over the exact UTF-8 bytes of the
// string, so any re-serialization of the payload changes the result.
func CalculateHexHash(payload string) string {
	digest := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(digest[:])
}
