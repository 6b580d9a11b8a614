package helper

import (
	"fmt"
	"strings"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/crypto"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// SignaturesCoveringHash returns the signatures whose covered hash list
// contains the target hash. Hash comparison is constant time.
func SignaturesCoveringHash(signatures []model.WhitelistSignature, targetHash string) []model.WhitelistSignature {
	var covering []model.WhitelistSignature
	for _, signature := range signatures {
		for _, hash := range signature.Hashes {
			if ConstantTimeCompare(hash, targetHash) {
				covering = append(covering, signature)
				break
			}
		}
	}
	return covering
}

// VerifyParallelThresholds evaluates the signature paths of a
// whitelisting rule against the signatures approving the target hash.
// The paths are alternatives: the first sequence whose group thresholds
// are all met approves the hash. Within a sequence the thresholds must be
// met by disjoint signer sets; each user is credited to at most one
// threshold, the earliest declared one whose group contains the user and
// which still needs signatures. Users are attributed in container order,
// so the outcome does not depend on the order signatures arrive in.
func VerifyParallelThresholds(container *model.DecodedRulesContainer, parallelThresholds []*model.SequentialThresholds, signatures []model.WhitelistSignature, targetHash, ruleKey string) error {
	if container == nil {
		return &model.ValidationError{Message: "rules container cannot be nil"}
	}
	if len(parallelThresholds) == 0 {
		return &model.IntegrityError{
			Kind:    model.ThresholdNotMet,
			RuleKey: ruleKey,
			Message: "rule defines no signature paths",
		}
	}

	signers := verifiedSigners(container, signatures, targetHash)

	var pathFailures []string
	for i, sequence := range parallelThresholds {
		if err := verifySequentialThresholds(container, sequence, signers); err != nil {
			pathFailures = append(pathFailures, fmt.Sprintf("path %d: %v", i+1, err))
			continue
		}
		return nil
	}
	return &model.IntegrityError{
		Kind:      model.ThresholdNotMet,
		RuleKey:   ruleKey,
		Threshold: len(parallelThresholds) - 1,
		Message:   fmt.Sprintf("no signature path satisfied: %s", strings.Join(pathFailures, "; ")),
	}
}

// verifiedSigners returns the set of container users with at least one
// signature that verifies over the target hash. Signatures cover the
// UTF-8 bytes of the hex hash string, not the decoded digest. Each user
// is verified at most once.
func verifiedSigners(container *model.DecodedRulesContainer, signatures []model.WhitelistSignature, targetHash string) map[string]bool {
	signers := make(map[string]bool)
	for _, signature := range signatures {
		userSig := signature.UserSignature
		if userSig == nil || userSig.UserID == "" {
			continue
		}
		if signers[userSig.UserID] {
			continue
		}
		user := container.FindUserByID(userSig.UserID)
		if user == nil || user.PublicKey == nil {
			continue
		}
		ok, err := crypto.VerifySignature(user.PublicKey, []byte(targetHash), userSig.Signature)
		if err != nil || !ok {
			continue
		}
		signers[userSig.UserID] = true
	}
	return signers
}

// verifySequentialThresholds checks a single signature path. All group
// thresholds must be met, crediting each verified signer to at most one
// threshold.
func verifySequentialThresholds(container *model.DecodedRulesContainer, sequence *model.SequentialThresholds, signers map[string]bool) error {
	if sequence == nil || len(sequence.Thresholds) == 0 {
		return fmt.Errorf("sequence defines no group thresholds")
	}

	groups := make([]*model.RuleGroup, len(sequence.Thresholds))
	for i, threshold := range sequence.Thresholds {
		if threshold == nil {
			return fmt.Errorf("group threshold %d is missing", i+1)
		}
		groups[i] = container.FindGroupByID(threshold.GroupID)
		if groups[i] == nil && threshold.MinimumSignatures > 0 {
			return fmt.Errorf("group %q not found in rules container", threshold.GroupID)
		}
	}

	counts := make([]int, len(sequence.Thresholds))
	for _, user := range container.Users {
		if user == nil || !signers[user.ID] {
			continue
		}
		for i, threshold := range sequence.Thresholds {
			if counts[i] >= threshold.MinimumSignatures {
				continue
			}
			if !groups[i].ContainsUser(user.ID) {
				continue
			}
			counts[i]++
			break
		}
	}

	for i, threshold := range sequence.Thresholds {
		if counts[i] < threshold.MinimumSignatures {
			return fmt.Errorf("group %q has %d of %d required signatures", threshold.GroupID, counts[i], threshold.MinimumSignatures)
		}
	}
	return nil
}
