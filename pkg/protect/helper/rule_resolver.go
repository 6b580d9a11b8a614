package helper

import (
	"fmt"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// ResolveAddressWhitelistingRule returns the single address whitelisting
// rule matching the given currency and network. Matching is byte exact,
// no case folding and no wildcards. Zero matches and multiple matches are
// both errors: an ambiguous rule set cannot be trusted.
func ResolveAddressWhitelistingRule(container *model.DecodedRulesContainer, currency, network string) (*model.AddressWhitelistingRules, error) {
	ruleKey := currency + "/" + network

	var rules []*model.AddressWhitelistingRules
	if container != nil {
		rules = container.AddressWhitelistingRules
	}

	var match *model.AddressWhitelistingRules
	count := 0
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if rule.Currency == currency && rule.Network == network {
			count++
			if match == nil {
				match = rule
			}
		}
	}

	switch {
	case count == 0:
		return nil, &model.IntegrityError{
			Kind:    model.NoApplicableRule,
			RuleKey: ruleKey,
			Message: fmt.Sprintf("no address whitelisting rule for currency=%s network=%s", currency, network),
		}
	case count > 1:
		return nil, &model.IntegrityError{
			Kind:    model.AmbiguousRule,
			RuleKey: ruleKey,
			Message: fmt.Sprintf("%d address whitelisting rules match currency=%s network=%s", count, currency, network),
		}
	}
	return match, nil
}

// ResolveContractAddressWhitelistingRule returns the single contract
// address whitelisting rule matching the given blockchain and network,
// with the same exact-match semantics as address rules.
func ResolveContractAddressWhitelistingRule(container *model.DecodedRulesContainer, blockchain, network string) (*model.ContractAddressWhitelistingRules, error) {
	ruleKey := blockchain + "/" + network

	var rules []*model.ContractAddressWhitelistingRules
	if container != nil {
		rules = container.ContractAddressWhitelistingRules
	}

	var match *model.ContractAddressWhitelistingRules
	count := 0
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if rule.Blockchain == blockchain && rule.Network == network {
			count++
			if match == nil {
				match = rule
			}
		}
	}

	switch {
	case count == 0:
		return nil, &model.IntegrityError{
			Kind:    model.NoApplicableRule,
			RuleKey: ruleKey,
			Message: fmt.Sprintf("no contract address whitelisting rule for blockchain=%s network=%s", blockchain, network),
		}
	case count > 1:
		return nil, &model.IntegrityError{
			Kind:    model.AmbiguousRule,
			RuleKey: ruleKey,
			Message: fmt.Sprintf("%d contract address whitelisting rules match blockchain=%s network=%s", count, blockchain, network),
		}
	}
	return match, nil
}
