package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// SignData signs the SHA-256 digest of data with the given key and returns
// the DER-encoded signature in base64. The nonce is drawn from the system
// random source, so two signatures over the same data differ in bytes while
// both verify.
func SignData(key *ecdsa.PrivateKey, data []byte) (string, error) {
	if key == nil {
		return "", fmt.Errorf("private key cannot be nil")
	}
	digest := sha256.Sum256(data)
	signature, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign data: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// VerifySignature checks a base64-encoded DER signature over the SHA-256
// digest of data. It returns false with a nil error for a well-formed
// signature that does not verify, and an error only when the signature
// cannot be decoded.
func VerifySignature(key *ecdsa.PublicKey, data []byte, signatureB64 string) (bool, error) {
	if key == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}
	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}
	digest := sha256.Sum256(data)
	return ecdsa.VerifyASN1(key, digest[:], signature), nil
}
