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

// WhitelistedAddressService retrieves whitelisted addresses. Every returned
// envelope has been through the full verification chain; the verified
// address value is available through WhitelistedAddress().
type WhitelistedAddressService struct {
	api                *api.Client
	errMapper          *ErrorMapper
	rules              *GovernanceRulesService
	verifier           *helper.WhitelistedAddressVerifier
	superAdminKeys     []*ecdsa.PublicKey
	minValidSignatures int
}

// NewWhitelistedAddressService creates a WhitelistedAddressService. rules
// supplies the client-wide container cache for envelopes that arrive
// without their own rules container.
func NewWhitelistedAddressService(client *api.Client, rules *GovernanceRulesService, config *VerificationConfig) *WhitelistedAddressService {
	svc := &WhitelistedAddressService{
		api:       client,
		errMapper: NewErrorMapper(),
		rules:     rules,
	}
	if config != nil {
		svc.superAdminKeys = config.SuperAdminKeys
		svc.minValidSignatures = config.MinValidSignatures
	}
	svc.verifier = helper.NewWhitelistedAddressVerifier(svc.superAdminKeys, svc.minValidSignatures)
	return svc
}

// GetWhitelistedAddress retrieves one whitelisted address by ID and runs
// the full verification chain on it.
func (s *WhitelistedAddressService) GetWhitelistedAddress(ctx context.Context, id int64) (*model.WhitelistedAddressEnvelope, error) {
	if id <= 0 {
		return nil, &model.ValidationError{Message: "whitelisted address id must be positive"}
	}
	idText := strconv.FormatInt(id, 10)
	reply, err := s.api.GetWhitelistedAddress(ctx, idText)
	if err != nil {
		return nil, s.errMapper.MapError(err, "whitelisted address", idText)
	}
	if reply.Result == nil {
		return nil, &model.NotFoundError{Resource: "whitelisted address", ID: idText}
	}

	envelope := mapper.WhitelistedAddressEnvelopeFromDTO(reply.Result)
	if err := s.verifyEnvelope(ctx, envelope, nil); err != nil {
		return nil, err
	}
	return envelope, nil
}

// ListWhitelistedAddresses retrieves a page of whitelisted addresses, each
// verified. The listing requests normalized rules containers so a container
// shared by many envelopes is verified only once.
func (s *WhitelistedAddressService) ListWhitelistedAddresses(ctx context.Context, opts *model.ListWhitelistedAddressesOptions) ([]*model.WhitelistedAddressEnvelope, *model.Pagination, error) {
	params := &api.AddressListParams{RulesContainerNormalized: true}
	var limit, offset int64
	if opts != nil {
		params.Limit = opts.Limit
		params.Offset = opts.Offset
		params.Blockchain = opts.Blockchain
		params.Network = opts.Network
		params.Query = opts.Query
		params.IncludeForApproval = opts.IncludeForApproval
		limit, offset = opts.Limit, opts.Offset
	}

	reply, err := s.api.GetWhitelistedAddresses(ctx, params)
	if err != nil {
		return nil, nil, s.errMapper.MapError(err, "whitelisted addresses", "")
	}

	checks := verifyNormalizedContainers(
		mapper.HashRulesContainersFromDTO(reply.RulesContainers),
		s.superAdminKeys,
		s.minValidSignatures,
	)

	envelopes := mapper.WhitelistedAddressEnvelopesFromDTO(reply.Result)
	for _, envelope := range envelopes {
		var check *containerCheck
		if envelope.RulesContainerHash != "" {
			check = checks[envelope.RulesContainerHash]
		}
		if err := s.verifyEnvelope(ctx, envelope, check); err != nil {
			return nil, nil, errors.Wrapf(err, "verification failed for whitelisted address %d", envelope.ID)
		}
	}

	return envelopes, paginationFor(limit, offset, reply.TotalItems.Int64()), nil
}

// verifyEnvelope runs the verification chain and records the verified
// values on the envelope. check carries the pre-verified container of a
// normalized list reply; envelopes without any container of their own fall
// back to the client-wide cache.
func (s *WhitelistedAddressService) verifyEnvelope(ctx context.Context, envelope *model.WhitelistedAddressEnvelope, check *containerCheck) error {
	if envelope == nil {
		return &model.ValidationError{Message: "whitelisted address envelope cannot be nil"}
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

	result, err := s.verifier.VerifyWhitelistedAddress(
		envelope,
		mapper.RulesContainerFromBase64,
		mapper.UserSignaturesFromBase64,
		pre,
	)
	if err != nil {
		return err
	}
	envelope.SetVerified(result.VerifiedAddress, result.RulesContainer)
	return nil
}
