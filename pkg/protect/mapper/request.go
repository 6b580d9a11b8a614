package mapper

import (
	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// RequestFromDTO maps a request record into the domain model.
func RequestFromDTO(dto *api.RequestDTO) *model.Request {
	if dto == nil {
		return nil
	}
	return &model.Request{
		ID:       dto.ID.Int64(),
		TenantID: dto.TenantID.Int64(),
		Status:   dto.Status,
		Action:   dto.Action,
		Currency: dto.Currency,
		Rule:     dto.Rule,

		Metadata: metadataFromDTO(dto.Metadata),
		Trails:   trailsFromDTO(dto.Trails),

		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// RequestsFromDTO maps a list reply page.
func RequestsFromDTO(dtos []api.RequestDTO) []*model.Request {
	var out []*model.Request
	for i := range dtos {
		out = append(out, RequestFromDTO(&dtos[i]))
	}
	return out
}
