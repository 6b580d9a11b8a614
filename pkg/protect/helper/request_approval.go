package helper

import (
	"crypto/ecdsa"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// VerifyRequestHash checks that the metadata hash of a request matches
// its payload. Requests without payload data are skipped, records may
// not carry content yet while they wait for approval material.
func VerifyRequestHash(request *model.Request) error {
	if request == nil {
		return &model.ValidationError{Message: "request cannot be nil"}
	}
	if request.Metadata == nil || request.Metadata.PayloadAsString == "" {
		return nil
	}
	if request.Metadata.Hash == "" {
		return &model.IntegrityError{
			Kind:      model.RequestHashMismatch,
			RequestID: request.ID,
			Message:   fmt.Sprintf("request %d carries a payload but no hash", request.ID),
		}
	}
	computed := crypto.CalculateHexHash(request.Metadata.PayloadAsString)
	if !ConstantTimeCompare(computed, request.Metadata.Hash) {
		return &model.IntegrityError{
			Kind:      model.RequestHashMismatch,
			RequestID: request.ID,
			Message:   fmt.Sprintf("request %d metadata hash does not match payload", request.ID),
		}
	}
	return nil
}

// RequestApproval is a signed approval of a request batch, ready to send
// to the platform.
type RequestApproval struct {
	// IDs are the approved request ids in ascending numeric order, as
	// decimal strings.
	IDs []string
	// SignedMessage is the concatenation of the request hashes in id
	// order, the exact bytes covered by Signature.
	SignedMessage string
	// Signature is the base64-encoded DER signature over SignedMessage.
	Signature string
}

// BuildRequestApproval signs a batch of requests for approval. Requests
// are ordered by numeric id ascending and their hex hash strings are
// concatenated without separators; the concatenation is signed as UTF-8
// bytes. The hashes are never hex-decoded, the platform verifies over
// the same string form.
func BuildRequestApproval(requests []*model.Request, key *ecdsa.PrivateKey) (*RequestApproval, error) {
	if len(requests) == 0 {
		return nil, &model.ValidationError{Message: "no requests to approve"}
	}
	if key == nil {
		return nil, &model.ValidationError{Message: "approval key cannot be nil"}
	}

	ordered := make([]*model.Request, len(requests))
	copy(ordered, requests)
	for _, request := range ordered {
		if request == nil {
			return nil, &model.ValidationError{Message: "request cannot be nil"}
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	var message strings.Builder
	ids := make([]string, 0, len(ordered))
	for _, request := range ordered {
		if request.Metadata == nil || request.Metadata.Hash == "" {
			return nil, &model.ValidationError{
				Kind:      model.MissingHash,
				RequestID: request.ID,
				Message:   fmt.Sprintf("request %d has no metadata hash", request.ID),
			}
		}
		message.WriteString(request.Metadata.Hash)
		ids = append(ids, strconv.FormatInt(request.ID, 10))
	}

	signature, err := crypto.SignData(key, []byte(message.String()))
	if err != nil {
		return nil, err
	}

	return &RequestApproval{
		IDs:           ids,
		SignedMessage: message.String(),
		Signature:     signature,
	}, nil
}
