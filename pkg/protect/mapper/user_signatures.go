package mapper

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/taurushq-io/protect-sdk-go/internal/proto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// UserSignaturesFromBase64 decodes a base64-encoded rules signature blob.
// See UserSignaturesFromBytes.
func UserSignaturesFromBase64(base64Data string) ([]*model.RuleUserSignature, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return nil, &model.IntegrityError{
			Kind:    model.MalformedSignatures,
			Message: fmt.Sprintf("rules signatures are not valid base64: %v", err),
		}
	}
	return UserSignaturesFromBytes(raw)
}

// UserSignaturesFromBytes decodes rules signature bytes. The protobuf form
// is tried first; JSON is accepted both as a bare array of signature
// entries and as a {"signatures": [...]} wrapper. Empty input yields an
// empty list.
func UserSignaturesFromBytes(data []byte) ([]*model.RuleUserSignature, error) {
	if len(data) == 0 {
		return nil, nil
	}

	pb := &proto.UserSignatures{}
	pbErr := pb.Unmarshal(data)
	if pbErr == nil && len(pb.GetSignatures()) > 0 {
		return userSignaturesFromProto(pb), nil
	}

	signatures, jsonErr := userSignaturesFromJSON(data)
	if jsonErr == nil {
		return signatures, nil
	}
	if pbErr == nil {
		return nil, nil
	}
	return nil, &model.IntegrityError{
		Kind:    model.MalformedSignatures,
		Message: fmt.Sprintf("rules signatures decode as neither protobuf (%v) nor JSON (%v)", pbErr, jsonErr),
	}
}

func userSignaturesFromProto(pb *proto.UserSignatures) []*model.RuleUserSignature {
	signatures := make([]*model.RuleUserSignature, 0, len(pb.GetSignatures()))
	for _, s := range pb.GetSignatures() {
		signatures = append(signatures, &model.RuleUserSignature{
			UserID:    s.GetUserId(),
			Signature: base64.StdEncoding.EncodeToString(s.GetSignature()),
		})
	}
	return signatures
}

func userSignaturesFromJSON(data []byte) ([]*model.RuleUserSignature, error) {
	listRaw := json.RawMessage(bytes.TrimSpace(data))
	if len(listRaw) > 0 && listRaw[0] == '{' {
		obj, err := parseJSONObject(listRaw)
		if err != nil {
			return nil, err
		}
		raw, ok := obj.raw("signatures")
		if !ok {
			return nil, fmt.Errorf("signature object carries no signatures key")
		}
		listRaw = raw
	}
	var items []jsonObject
	if err := json.Unmarshal(listRaw, &items); err != nil {
		return nil, err
	}
	signatures := make([]*model.RuleUserSignature, 0, len(items))
	for _, item := range items {
		signatures = append(signatures, &model.RuleUserSignature{
			UserID:    item.str("userId", "user_id"),
			Signature: item.str("signature"),
		})
	}
	return signatures, nil
}
