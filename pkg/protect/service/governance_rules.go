package service

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/cache"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/helper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// GovernanceRulesService retrieves governance rules and maintains the
// client-wide verified rules container cache.
type GovernanceRulesService struct {
	api                *api.Client
	errMapper          *ErrorMapper
	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int
	cache              *cache.RulesContainerCache
}

// NewGovernanceRulesService creates a GovernanceRulesService.
func NewGovernanceRulesService(client *api.Client, config *VerificationConfig) *GovernanceRulesService {
	svc := &GovernanceRulesService{
		api:       client,
		errMapper: NewErrorMapper(),
	}
	if config != nil {
		svc.superAdminKeys = config.SuperAdminKeys
		svc.minValidSignatures = config.MinValidSignatures
	}
	svc.cache = cache.NewRulesContainerCache(mapper.RulesContainerFromBase64)
	return svc
}

// GetRules retrieves the current signed governance rules. The container and
// signature blob are returned as received; use GetDecodedRulesContainer to
// verify and decode them.
func (s *GovernanceRulesService) GetRules(ctx context.Context) (*model.GovernanceRules, error) {
	reply, err := s.api.GetRules(ctx)
	if err != nil {
		return nil, s.errMapper.MapError(err, "governance rules", "")
	}
	if reply.Result == nil {
		return nil, &model.NotFoundError{Resource: "governance rules"}
	}
	return mapper.GovernanceRulesFromDTO(reply.Result)
}

// GetDecodedRulesContainer verifies the SuperAdmin signatures of the given
// rules and decodes the container.
func (s *GovernanceRulesService) GetDecodedRulesContainer(rules *model.GovernanceRules) (*model.DecodedRulesContainer, error) {
	if rules == nil {
		return nil, &model.ValidationError{Message: "governance rules cannot be nil"}
	}
	return helper.VerifyAndDecodeRulesContainer(
		rules.RulesContainer,
		rules.RulesSignatures,
		s.superAdminKeys,
		s.minValidSignatures,
		mapper.RulesContainerFromBase64,
		mapper.UserSignaturesFromBase64,
	)
}

// GetCurrentRulesContainer returns the verified rules container of the
// tenant. The first call fetches and verifies the rules; later calls are
// served from the cache until it is invalidated.
func (s *GovernanceRulesService) GetCurrentRulesContainer(ctx context.Context) (*model.DecodedRulesContainer, error) {
	return s.cache.Get(ctx, s.fetchVerifiedContainer)
}

// InvalidateRulesContainerCache drops the cached container so the next
// GetCurrentRulesContainer fetches fresh rules.
func (s *GovernanceRulesService) InvalidateRulesContainerCache() {
	log.Debug("Invalidating rules container cache")
	s.cache.Invalidate()
}

// fetchVerifiedContainer is the cache fetch. SuperAdmin signatures are
// verified here so only trusted containers ever enter the cache.
func (s *GovernanceRulesService) fetchVerifiedContainer(ctx context.Context) (string, error) {
	rules, err := s.GetRules(ctx)
	if err != nil {
		return "", err
	}
	raw, err := helper.DecodeBase64(rules.RulesContainer)
	if err != nil {
		return "", &model.IntegrityError{
			Kind:    model.MalformedContainer,
			Message: fmt.Sprintf("rules container is not valid base64: %v", err),
		}
	}
	if err := helper.VerifyGovernanceRulesSignatures(raw, rules.Signatures, s.superAdminKeys, s.minValidSignatures); err != nil {
		return "", err
	}
	return rules.RulesContainer, nil
}
