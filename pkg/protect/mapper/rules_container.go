// Package mapper converts wire representations into domain models: rules
// containers and signature blobs from their protobuf or JSON forms, and
// REST reply objects into envelopes, requests and governance rules. The
// decoders are pure; verification lives in the helper package.
package mapper

import (
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/taurushq-io/protect-sdk-go/internal/proto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

var log = logrus.WithField("prefix", "protect/mapper")

// RulesContainerFromBase64 decodes a base64-encoded rules container into
// its normalized form. See RulesContainerFromBytes.
func RulesContainerFromBase64(base64Data string) (*model.DecodedRulesContainer, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return nil, &model.IntegrityError{
			Kind:    model.MalformedContainer,
			Message: fmt.Sprintf("rules container is not valid base64: %v", err),
		}
	}
	return RulesContainerFromBytes(raw)
}

// RulesContainerFromBytes decodes rules container bytes into their
// normalized form. The protobuf form is tried first; bytes that do not
// decode as protobuf, or decode without any governance content, fall back
// to the JSON form. Empty input yields an empty container.
func RulesContainerFromBytes(data []byte) (*model.DecodedRulesContainer, error) {
	if len(data) == 0 {
		return &model.DecodedRulesContainer{}, nil
	}

	pb := &proto.RulesContainer{}
	pbErr := pb.Unmarshal(data)
	if pbErr == nil {
		container := rulesContainerFromProto(pb)
		if !container.IsEmpty() {
			return container, nil
		}
	}

	container, jsonErr := rulesContainerFromJSON(data)
	if jsonErr == nil {
		return container, nil
	}
	if pbErr == nil {
		// Valid protobuf without users, groups or rules. Accepted, but
		// worth flagging since signed containers normally carry content.
		log.Warn("rules container decoded as structurally empty protobuf")
		return rulesContainerFromProto(pb), nil
	}
	return nil, &model.IntegrityError{
		Kind:    model.MalformedContainer,
		Message: fmt.Sprintf("rules container decodes as neither protobuf (%v) nor JSON (%v)", pbErr, jsonErr),
	}
}

// RulesContainerToBase64 encodes a normalized container back into the
// base64-encoded protobuf wire form. Decoding the result yields an equal
// container.
func RulesContainerToBase64(container *model.DecodedRulesContainer) string {
	if container == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(rulesContainerToProto(container).Marshal())
}

func rulesContainerFromProto(pb *proto.RulesContainer) *model.DecodedRulesContainer {
	container := &model.DecodedRulesContainer{
		MinimumDistinctUserSignatures:  pb.GetMinimumDistinctUserSignatures(),
		MinimumDistinctGroupSignatures: pb.GetMinimumDistinctGroupSignatures(),
		MinimumCommitmentSignatures:    pb.GetMinimumCommitmentSignatures(),
		EnforcedRulesHash:              pb.GetEnforcedRulesHash(),
		Timestamp:                      pb.GetTimestamp(),
		EngineIdentities:               pb.GetEngineIdentities(),
		HsmSlotID:                      pb.GetHsmSlotId(),
		Properties:                     pb.GetProperties(),
	}
	for _, u := range pb.GetUsers() {
		container.Users = append(container.Users, userFromProto(u))
	}
	for _, g := range pb.GetGroups() {
		container.Groups = append(container.Groups, groupFromProto(g))
	}
	for _, r := range pb.GetAddressWhitelistingRules() {
		container.AddressWhitelistingRules = append(container.AddressWhitelistingRules, &model.AddressWhitelistingRules{
			Currency:           r.GetCurrency(),
			Network:            r.GetNetwork(),
			ParallelThresholds: parallelThresholdsFromProto(r.GetParallelThresholds()),
		})
	}
	for _, r := range pb.GetContractAddressWhitelistingRules() {
		container.ContractAddressWhitelistingRules = append(container.ContractAddressWhitelistingRules, &model.ContractAddressWhitelistingRules{
			Blockchain:         r.GetBlockchain(),
			Network:            r.GetNetwork(),
			ParallelThresholds: parallelThresholdsFromProto(r.GetParallelThresholds()),
		})
	}
	for _, r := range pb.GetTransactionRules() {
		container.TransactionRules = append(container.TransactionRules, transactionRulesFromProto(r))
	}
	return container
}

func userFromProto(pb *proto.User) *model.RuleUser {
	user := &model.RuleUser{
		ID:         pb.GetId(),
		Properties: pb.GetProperties(),
	}
	for _, r := range pb.GetRoles() {
		user.Roles = append(user.Roles, r.String())
	}
	user.PublicKeyPEM, user.PublicKey = publicKeyFromWire(pb.GetPublicKey())
	return user
}

func groupFromProto(pb *proto.Group) *model.RuleGroup {
	return &model.RuleGroup{
		ID:         pb.GetId(),
		UserIDs:    pb.GetUserIds(),
		Properties: pb.GetProperties(),
	}
}

func parallelThresholdsFromProto(pbs []*proto.SequentialThresholds) []*model.SequentialThresholds {
	var out []*model.SequentialThresholds
	for _, pb := range pbs {
		seq := &model.SequentialThresholds{}
		for _, t := range pb.GetThresholds() {
			seq.Thresholds = append(seq.Thresholds, &model.GroupThreshold{
				GroupID:           t.GetGroupId(),
				MinimumSignatures: int(t.GetMinimumSignatures()),
			})
		}
		out = append(out, seq)
	}
	return out
}

func transactionRulesFromProto(pb *proto.TransactionRules) *model.TransactionRules {
	rules := &model.TransactionRules{Key: pb.GetKey()}
	for _, l := range pb.GetLines() {
		rules.Lines = append(rules.Lines, &model.TransactionLine{
			Cells:              l.GetCells(),
			ParallelThresholds: parallelThresholdsFromProto(l.GetParallelThresholds()),
		})
	}
	return rules
}

// publicKeyFromWire normalizes a wire public key. The protobuf schema
// carries PKIX DER bytes, older containers carry PEM text bytes. When the
// key parses, the returned PEM is the canonical re-encoding; otherwise the
// raw text is preserved with a nil key.
func publicKeyFromWire(data []byte) (string, *ecdsa.PublicKey) {
	if len(data) == 0 {
		return "", nil
	}
	if key, err := crypto.ParsePublicKeyDER(data); err == nil {
		if pemText, err := crypto.EncodePublicKeyPEM(key); err == nil {
			return pemText, key
		}
	}
	pemText := string(data)
	if key, err := crypto.DecodePublicKeyPEM(pemText); err == nil {
		if canonical, err := crypto.EncodePublicKeyPEM(key); err == nil {
			return canonical, key
		}
		return pemText, key
	}
	return pemText, nil
}

func rulesContainerFromJSON(data []byte) (*model.DecodedRulesContainer, error) {
	obj, err := parseJSONObject(data)
	if err != nil {
		return nil, err
	}
	container := &model.DecodedRulesContainer{
		MinimumDistinctUserSignatures:  obj.uint32Val("minimumDistinctUserSignatures", "minimum_distinct_user_signatures"),
		MinimumDistinctGroupSignatures: obj.uint32Val("minimumDistinctGroupSignatures", "minimum_distinct_group_signatures"),
		MinimumCommitmentSignatures:    obj.uint32Val("minimumCommitmentSignatures", "minimum_commitment_signatures"),
		EnforcedRulesHash:              obj.str("enforcedRulesHash", "enforced_rules_hash"),
		Timestamp:                      obj.int64Val("timestamp"),
		EngineIdentities:               obj.strSlice("engineIdentities", "engine_identities"),
		HsmSlotID:                      obj.uint32Val("hsmSlotId", "hsm_slot_id"),
		Properties:                     obj.strMap("properties"),
	}
	for _, u := range obj.objSlice("users") {
		container.Users = append(container.Users, userFromJSON(u))
	}
	for _, g := range obj.objSlice("groups") {
		container.Groups = append(container.Groups, &model.RuleGroup{
			ID:         g.str("id"),
			UserIDs:    g.strSlice("userIds", "user_ids"),
			Properties: g.strMap("properties"),
		})
	}
	for _, r := range obj.objSlice("addressWhitelistingRules", "address_whitelisting_rules") {
		rule := &model.AddressWhitelistingRules{
			Currency: r.str("currency"),
			Network:  r.str("network"),
		}
		if raw, ok := r.raw("parallelThresholds", "parallel_thresholds"); ok {
			rule.ParallelThresholds = parallelThresholdsFromJSON(raw)
		}
		container.AddressWhitelistingRules = append(container.AddressWhitelistingRules, rule)
	}
	for _, r := range obj.objSlice("contractAddressWhitelistingRules", "contract_address_whitelisting_rules") {
		rule := &model.ContractAddressWhitelistingRules{
			Blockchain: r.str("blockchain"),
			Network:    r.str("network"),
		}
		if raw, ok := r.raw("parallelThresholds", "parallel_thresholds"); ok {
			rule.ParallelThresholds = parallelThresholdsFromJSON(raw)
		}
		container.ContractAddressWhitelistingRules = append(container.ContractAddressWhitelistingRules, rule)
	}
	for _, r := range obj.objSlice("transactionRules", "transaction_rules") {
		container.TransactionRules = append(container.TransactionRules, transactionRulesFromJSON(r))
	}
	return container, nil
}

func userFromJSON(obj jsonObject) *model.RuleUser {
	user := &model.RuleUser{
		ID:         obj.str("id"),
		Roles:      obj.strSlice("roles"),
		Properties: obj.strMap("properties"),
	}
	pemText := obj.str("publicKey", "publicKeyPem", "public_key", "public_key_pem")
	if pemText == "" {
		return user
	}
	if key, err := crypto.DecodePublicKeyPEM(pemText); err == nil {
		user.PublicKey = key
		if canonical, err := crypto.EncodePublicKeyPEM(key); err == nil {
			user.PublicKeyPEM = canonical
			return user
		}
	}
	user.PublicKeyPEM = pemText
	return user
}

// parallelThresholdsFromJSON accepts both the nested form, a list of
// {thresholds: [...]} objects, and the flat form where each entry is a
// bare group threshold. Flat entries are wrapped into singleton sequences.
func parallelThresholdsFromJSON(raw json.RawMessage) []*model.SequentialThresholds {
	var items []jsonObject
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []*model.SequentialThresholds
	for _, item := range items {
		if nested, ok := item.raw("thresholds"); ok {
			var entries []jsonObject
			if err := json.Unmarshal(nested, &entries); err != nil {
				continue
			}
			seq := &model.SequentialThresholds{}
			for _, t := range entries {
				seq.Thresholds = append(seq.Thresholds, groupThresholdFromJSON(t))
			}
			out = append(out, seq)
			continue
		}
		out = append(out, &model.SequentialThresholds{
			Thresholds: []*model.GroupThreshold{groupThresholdFromJSON(item)},
		})
	}
	return out
}

func groupThresholdFromJSON(obj jsonObject) *model.GroupThreshold {
	return &model.GroupThreshold{
		GroupID:           obj.str("groupId", "group_id"),
		MinimumSignatures: int(obj.int64Val("minimumSignatures", "minimum_signatures")),
	}
}

func transactionRulesFromJSON(obj jsonObject) *model.TransactionRules {
	rules := &model.TransactionRules{Key: obj.str("key")}
	for _, line := range obj.objSlice("lines") {
		l := &model.TransactionLine{}
		for _, cell := range line.strSlice("cells") {
			l.Cells = append(l.Cells, []byte(cell))
		}
		if raw, ok := line.raw("parallelThresholds", "parallel_thresholds"); ok {
			l.ParallelThresholds = parallelThresholdsFromJSON(raw)
		}
		rules.Lines = append(rules.Lines, l)
	}
	return rules
}

func rulesContainerToProto(container *model.DecodedRulesContainer) *proto.RulesContainer {
	pb := &proto.RulesContainer{
		MinimumDistinctUserSignatures:  container.MinimumDistinctUserSignatures,
		MinimumDistinctGroupSignatures: container.MinimumDistinctGroupSignatures,
		MinimumCommitmentSignatures:    container.MinimumCommitmentSignatures,
		EnforcedRulesHash:              container.EnforcedRulesHash,
		Timestamp:                      container.Timestamp,
		EngineIdentities:               container.EngineIdentities,
		HsmSlotId:                      container.HsmSlotID,
		Properties:                     container.Properties,
	}
	for _, u := range container.Users {
		pbUser := &proto.User{
			Id:         u.ID,
			PublicKey:  publicKeyToWire(u),
			Properties: u.Properties,
		}
		for _, r := range u.Roles {
			pbUser.Roles = append(pbUser.Roles, proto.RoleFromString(r))
		}
		pb.Users = append(pb.Users, pbUser)
	}
	for _, g := range container.Groups {
		pb.Groups = append(pb.Groups, &proto.Group{
			Id:         g.ID,
			UserIds:    g.UserIDs,
			Properties: g.Properties,
		})
	}
	for _, r := range container.AddressWhitelistingRules {
		pb.AddressWhitelistingRules = append(pb.AddressWhitelistingRules, &proto.AddressWhitelistingRules{
			Currency:           r.Currency,
			Network:            r.Network,
			ParallelThresholds: parallelThresholdsToProto(r.ParallelThresholds),
		})
	}
	for _, r := range container.ContractAddressWhitelistingRules {
		pb.ContractAddressWhitelistingRules = append(pb.ContractAddressWhitelistingRules, &proto.ContractAddressWhitelistingRules{
			Blockchain:         r.Blockchain,
			Network:            r.Network,
			ParallelThresholds: parallelThresholdsToProto(r.ParallelThresholds),
		})
	}
	for _, r := range container.TransactionRules {
		pbRules := &proto.TransactionRules{Key: r.Key}
		for _, l := range r.Lines {
			pbRules.Lines = append(pbRules.Lines, &proto.TransactionRules_Line{
				Cells:              l.Cells,
				ParallelThresholds: parallelThresholdsToProto(l.ParallelThresholds),
			})
		}
		pb.TransactionRules = append(pb.TransactionRules, pbRules)
	}
	return pb
}

func parallelThresholdsToProto(parallel []*model.SequentialThresholds) []*proto.SequentialThresholds {
	var out []*proto.SequentialThresholds
	for _, seq := range parallel {
		pbSeq := &proto.SequentialThresholds{}
		for _, t := range seq.Thresholds {
			minimum := t.MinimumSignatures
			if minimum < 0 {
				minimum = 0
			}
			pbSeq.Thresholds = append(pbSeq.Thresholds, &proto.GroupThreshold{
				GroupId:           t.GroupID,
				MinimumSignatures: uint32(minimum),
			})
		}
		out = append(out, pbSeq)
	}
	return out
}

func publicKeyToWire(u *model.RuleUser) []byte {
	if u.PublicKey != nil {
		if der, err := crypto.MarshalPublicKeyDER(u.PublicKey); err == nil {
			return der
		}
	}
	if u.PublicKeyPEM != "" {
		return []byte(u.PublicKeyPEM)
	}
	return nil
}
