package mapper

import (
	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// GovernanceRulesFromDTO maps a rules reply into the domain model. The
// signature blob is decoded eagerly so callers always see both forms.
func GovernanceRulesFromDTO(dto *api.RulesDTO) (*model.GovernanceRules, error) {
	if dto == nil {
		return nil, nil
	}
	rules := &model.GovernanceRules{
		TenantID:        dto.TenantID,
		Locked:          dto.Locked,
		RulesContainer:  dto.RulesContainer,
		RulesSignatures: dto.RulesSignatures,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
	if dto.RulesSignatures != "" {
		signatures, err := UserSignaturesFromBase64(dto.RulesSignatures)
		if err != nil {
			return nil, err
		}
		rules.Signatures = signatures
	}
	return rules, nil
}

// WhitelistedAddressEnvelopeFromDTO maps an address record into the domain
// envelope. No field is verified here; the helper package does that.
func WhitelistedAddressEnvelopeFromDTO(dto *api.WhitelistedAddressDTO) *model.WhitelistedAddressEnvelope {
	if dto == nil {
		return nil
	}
	return &model.WhitelistedAddressEnvelope{
		ID:       dto.ID.Int64(),
		TenantID: dto.TenantID.Int64(),
		Status:   dto.Status,

		Blockchain: dto.Blockchain,
		Network:    dto.Network,
		Address:    dto.Address,
		Label:      dto.Label,

		Metadata:      metadataFromDTO(dto.Metadata),
		SignedAddress: signedAddressFromDTO(dto.SignedAddress),

		RulesContainer:     dto.RulesContainer,
		RulesContainerHash: dto.RulesContainerHash,
		RulesSignatures:    dto.RulesSignatures,

		LinkedInternalAddresses: internalAddressesFromDTO(dto.LinkedInternalAddresses),
		LinkedWallets:           internalWalletsFromDTO(dto.LinkedWallets),
		Scores:                  scoresFromDTO(dto.Scores),
		Trails:                  trailsFromDTO(dto.Trails),
		Approvers:               approversFromDTO(dto.Approvers),
		Attributes:              attributesFromDTO(dto.Attributes),

		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// WhitelistedAddressEnvelopesFromDTO maps a list reply page.
func WhitelistedAddressEnvelopesFromDTO(dtos []api.WhitelistedAddressDTO) []*model.WhitelistedAddressEnvelope {
	var out []*model.WhitelistedAddressEnvelope
	for i := range dtos {
		out = append(out, WhitelistedAddressEnvelopeFromDTO(&dtos[i]))
	}
	return out
}

// WhitelistedAssetEnvelopeFromDTO maps an asset record into the domain
// envelope.
func WhitelistedAssetEnvelopeFromDTO(dto *api.WhitelistedContractDTO) *model.WhitelistedAssetEnvelope {
	if dto == nil {
		return nil
	}
	return &model.WhitelistedAssetEnvelope{
		ID:       dto.ID.Int64(),
		TenantID: dto.TenantID.Int64(),
		Status:   dto.Status,
		Action:   dto.Action,

		Blockchain:      dto.Blockchain,
		Network:         dto.Network,
		ContractAddress: dto.ContractAddress,

		Metadata:              metadataFromDTO(dto.Metadata),
		SignedContractAddress: signedContractAddressFromDTO(dto.SignedContractAddress),

		RulesContainer:     dto.RulesContainer,
		RulesContainerHash: dto.RulesContainerHash,
		RulesSignatures:    dto.RulesSignatures,

		Trails:    trailsFromDTO(dto.Trails),
		Approvers: approversFromDTO(dto.Approvers),

		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// WhitelistedAssetEnvelopesFromDTO maps a list reply page.
func WhitelistedAssetEnvelopesFromDTO(dtos []api.WhitelistedContractDTO) []*model.WhitelistedAssetEnvelope {
	var out []*model.WhitelistedAssetEnvelope
	for i := range dtos {
		out = append(out, WhitelistedAssetEnvelopeFromDTO(&dtos[i]))
	}
	return out
}

// HashRulesContainersFromDTO maps the normalized rules containers of a list
// reply.
func HashRulesContainersFromDTO(dtos []api.HashRulesContainerDTO) []*model.HashRulesContainer {
	var out []*model.HashRulesContainer
	for _, dto := range dtos {
		out = append(out, &model.HashRulesContainer{
			Hash:            dto.Hash,
			RulesContainer:  dto.RulesContainer,
			RulesSignatures: dto.RulesSignatures,
		})
	}
	return out
}

func metadataFromDTO(dto *api.MetadataDTO) *model.Metadata {
	if dto == nil {
		return nil
	}
	return &model.Metadata{
		Hash:            dto.Hash,
		PayloadAsString: dto.PayloadAsString,
	}
}

func signedAddressFromDTO(dto *api.SignedWhitelistedAddressDTO) *model.SignedWhitelistedAddress {
	if dto == nil {
		return nil
	}
	return &model.SignedWhitelistedAddress{
		Payload:    dto.Payload,
		Signatures: whitelistSignaturesFromDTO(dto.Signatures),
	}
}

func signedContractAddressFromDTO(dto *api.SignedContractAddressDTO) *model.SignedContractAddress {
	if dto == nil {
		return nil
	}
	return &model.SignedContractAddress{
		Payload:    dto.Payload,
		Signatures: whitelistSignaturesFromDTO(dto.Signatures),
	}
}

func whitelistSignaturesFromDTO(dtos []api.WhitelistSignatureDTO) []model.WhitelistSignature {
	var out []model.WhitelistSignature
	for _, dto := range dtos {
		signature := model.WhitelistSignature{Hashes: dto.Hashes}
		if dto.UserSignature != nil {
			signature.UserSignature = &model.WhitelistUserSignature{
				UserID:    dto.UserSignature.UserID,
				Signature: dto.UserSignature.Signature,
				Comment:   dto.UserSignature.Comment,
			}
		}
		out = append(out, signature)
	}
	return out
}

func internalAddressesFromDTO(dtos []api.InternalAddressDTO) []*model.InternalAddress {
	var out []*model.InternalAddress
	for _, dto := range dtos {
		out = append(out, &model.InternalAddress{
			ID:    dto.ID.Int64(),
			Label: dto.Label,
		})
	}
	return out
}

func internalWalletsFromDTO(dtos []api.InternalWalletDTO) []*model.InternalWallet {
	var out []*model.InternalWallet
	for _, dto := range dtos {
		out = append(out, &model.InternalWallet{
			ID:    dto.ID.Int64(),
			Path:  dto.Path,
			Label: dto.Name,
		})
	}
	return out
}

func scoresFromDTO(dtos []api.ScoreDTO) []*model.Score {
	var out []*model.Score
	for _, dto := range dtos {
		out = append(out, &model.Score{
			Provider: dto.Provider,
			Score:    dto.Score,
			Details:  dto.Details,
		})
	}
	return out
}

func trailsFromDTO(dtos []api.TrailDTO) []*model.Trail {
	var out []*model.Trail
	for _, dto := range dtos {
		out = append(out, &model.Trail{
			Action:    dto.Action,
			UserID:    dto.UserID,
			Comment:   dto.Comment,
			Timestamp: dto.Timestamp,
		})
	}
	return out
}

func approversFromDTO(dto *api.ApproversDTO) *model.Approvers {
	if dto == nil {
		return nil
	}
	approvers := &model.Approvers{
		CurrentCount:   dto.CurrentCount,
		RequestedCount: dto.RequestedCount,
	}
	for _, parallel := range dto.Groups {
		group := &model.ParallelApproversGroup{}
		for _, g := range parallel.Groups {
			group.Groups = append(group.Groups, &model.ApproversGroup{
				ID:             g.ID,
				Name:           g.Name,
				RequiredCount:  g.RequiredCount,
				ApprovedCount:  g.ApprovedCount,
				UserIDs:        g.UserIDs,
				ApproverUserID: g.ApproverUserIDs,
			})
		}
		approvers.Groups = append(approvers.Groups, group)
	}
	return approvers
}

func attributesFromDTO(dtos []api.WhitelistedAddressAttributeDTO) []*model.WhitelistedAddressAttribute {
	var out []*model.WhitelistedAddressAttribute
	for _, dto := range dtos {
		out = append(out, &model.WhitelistedAddressAttribute{
			Key:   dto.Key,
			Value: dto.Value,
			Type:  dto.Type,
		})
	}
	return out
}
