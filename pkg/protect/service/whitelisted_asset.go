package service

import (
	"context"
	"crypto/ecdsa"
	"strconv"

	"github.com/pkg/errors"

	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/helper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// WhitelistedAssetService retrieves whitelisted assets. Every returned
// envelope has been through the full verification chain; the verified asset
// value is available through WhitelistedAsset().
type WhitelistedAssetService struct {
	api                *api.Client
	errMapper          *ErrorMapper
	rules              *GovernanceRulesService
	verifier           *helper.WhitelistedAssetVerifier
	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int
}

// NewWhitelistedAssetService creates a WhitelistedAssetService. rules
// supplies the client-wide container cache for envelopes that arrive
// without their own rules container.
func NewWhitelistedAssetService(client *api.Client, rules *GovernanceRulesService, config *VerificationConfig) *WhitelistedAssetService {
	svc := &WhitelistedAssetService{
		api:       client,
		errMapper: NewErrorMapper(),
		rules:     rules,
	}
	if config != nil {
		svc.superAdminKeys = config.SuperAdminKeys
		svc.minValidSignatures = config.MinValidSignatures
	}
	svc.verifier = helper.NewWhitelistedAssetVerifier(svc.superAdminKeys, svc.minValidSignatures)
	return svc
}

// GetWhitelistedAsset retrieves one whitelisted asset by ID and runs the
// full verification chain on it.
func (s *WhitelistedAssetService) GetWhitelistedAsset(ctx context.Context, id int64) (*model.WhitelistedAssetEnvelope, error) {
	if id <= 0 {
		return nil, &model.ValidationError{Message: "whitelisted asset id must be positive"}
	}
	idText := strconv.FormatInt(id, 10)
	reply, err := s.api.GetWhitelistedContract(ctx, idText)
	if err != nil {
		return nil, s.errMapper.MapError(err, "whitelisted asset", idText)
	}
	if reply.Result == nil {
		return nil, &model.NotFoundError{Resource: "whitelisted asset", ID: idText}
	}

	envelope := mapper.WhitelistedAssetEnvelopeFromDTO(reply.Result)
	if err := s.verifyEnvelope(ctx, envelope, nil); err != nil {
		return nil, err
	}
	return envelope, nil
}

// ListWhitelistedAssets retrieves a page of whitelisted assets, each
// verified. The listing requests normalized rules containers so a container
// shared by many envelopes is verified only once.
func (s *WhitelistedAssetService) ListWhitelistedAssets(ctx context.Context, opts *model.ListWhitelistedAssetsOptions) ([]*model.WhitelistedAssetEnvelope, *model.Pagination, error) {
	params := &api.ContractListParams{RulesContainerNormalized: true}
	var limit, offset int64
	if opts != nil {
		params.Limit = opts.Limit
		params.Offset = opts.Offset
		params.Blockchain = opts.Blockchain
		params.Network = opts.Network
		params.IncludeForApproval = opts.IncludeForApproval
		limit, offset = opts.Limit, opts.Offset
	}

	reply, err := s.api.GetWhitelistedContracts(ctx, params)
	if err != nil {
		return nil, nil, s.errMapper.MapError(err, "whitelisted assets", "")
	}

	checks := verifyNormalizedContainers(
		mapper.HashRulesContainersFromDTO(reply.RulesContainers),
		s.superAdminKeys,
		s.minValidSignatures,
	)

	envelopes := mapper.WhitelistedAssetEnvelopesFromDTO(reply.Result)
	for _, envelope := range envelopes {
		var check *containerCheck
		if envelope.RulesContainerHash != "" {
			check = checks[envelope.RulesContainerHash]
		}
		if err := s.verifyEnvelope(ctx, envelope, check); err != nil {
			return nil, nil, errors.Wrapf(err, "verification failed for whitelisted asset %d", envelope.ID)
		}
	}

	return envelopes, paginationFor(limit, offset, reply.TotalItems.Int64()), nil
}

// verifyEnvelope runs the verification chain and records the verified
// values on the envelope.
func (s *WhitelistedAssetService) verifyEnvelope(ctx context.Context, envelope *model.WhitelistedAssetEnvelope, check *containerCheck) error {
	if envelope == nil {
		return &model.ValidationError{Message: "whitelisted asset envelope cannot be nil"}
	}

	var pre *model.DecodedRulesContainer
	if check != nil {
		if check.err != nil {
			return check.err
		}
		pre = check.container
	}
	if pre == nil && envelope.RulesContainer == "" {
		fallback, err := s.rules.GetCurrentRulesContainer(ctx)
		if err != nil {
			return err
		}
		pre = fallback
	}

	result, err := s.verifier.VerifyWhitelistedAsset(
		envelope,
		mapper.RulesContainerFromBase64,
		mapper.UserSignaturesFromBase64,
		pre,
	)
	if err != nil {
		return err
	}
	envelope.SetVerified(result.VerifiedAsset, result.RulesContainer)
	return nil
}
