package service

import (
	"context"
	"crypto/ecdsa"
	"strconv"
	"strings"

	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/helper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// RequestService retrieves platform requests and submits approval
// decisions.
type RequestService struct {
	api       *api.Client
	errMapper *ErrorMapper
}

// NewRequestService creates a RequestService.
func NewRequestService(client *api.Client) *RequestService {
	return &RequestService{
		api:       client,
		errMapper: NewErrorMapper(),
	}
}

// GetRequest retrieves one request by ID. The metadata hash is checked
// against the payload before the request is returned.
func (s *RequestService) GetRequest(ctx context.Context, id int64) (*model.Request, error) {
	if id <= 0 {
		return nil, &model.ValidationError{Message: "request id must be positive"}
	}
	idText := strconv.FormatInt(id, 10)
	reply, err := s.api.GetRequest(ctx, idText)
	if err != nil {
		return nil, s.errMapper.MapError(err, "request", idText)
	}
	if reply.Result == nil {
		return nil, &model.NotFoundError{Resource: "request", ID: idText}
	}

	request := mapper.RequestFromDTO(reply.Result)
	if err := helper.VerifyRequestHash(request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListRequests retrieves a page of requests, each with its metadata hash
// checked against its payload.
func (s *RequestService) ListRequests(ctx context.Context, opts *model.ListRequestsOptions) ([]*model.Request, *model.Pagination, error) {
	params := &api.RequestListParams{}
	var limit, offset int64
	if opts != nil {
		params.Limit = opts.Limit
		params.Offset = opts.Offset
		params.Statuses = opts.Statuses
		params.Currency = opts.Currency
		limit, offset = opts.Limit, opts.Offset
	}

	reply, err := s.api.GetRequests(ctx, params)
	if err != nil {
		return nil, nil, s.errMapper.MapError(err, "requests", "")
	}

	requests := mapper.RequestsFromDTO(reply.Result)
	for _, request := range requests {
		if err := helper.VerifyRequestHash(request); err != nil {
			return nil, nil, err
		}
	}

	return requests, paginationFor(limit, offset, reply.TotalItems.Int64()), nil
}

// ApproveRequests signs the canonical hash concatenation of the given
// requests and submits the approval. Requests that carry a payload are
// hash-checked first; nothing is signed if any of them fails.
func (s *RequestService) ApproveRequests(ctx context.Context, requests []*model.Request, key *ecdsa.PrivateKey, comment string) error {
	for _, request := range requests {
		if err := helper.VerifyRequestHash(request); err != nil {
			return err
		}
	}

	approval, err := helper.BuildRequestApproval(requests, key)
	if err != nil {
		return err
	}

	log.WithField("requests", len(approval.IDs)).Debug("Submitting request approval")
	err = s.api.ApproveRequests(ctx, &api.ApproveRequestsRequest{
		IDs:       approval.IDs,
		Signature: approval.Signature,
		Comment:   comment,
	})
	if err != nil {
		return s.errMapper.MapError(err, "requests", "")
	}
	return nil
}

// RejectRequests submits a rejection for the given requests. A comment is
// mandatory and nothing is signed.
func (s *RequestService) RejectRequests(ctx context.Context, requests []*model.Request, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return &model.ValidationError{Message: "a comment is required to reject requests"}
	}
	if len(requests) == 0 {
		return &model.ValidationError{Message: "no requests to reject"}
	}
	ids := make([]string, 0, len(requests))
	for _, request := range requests {
		if request == nil {
			return &model.ValidationError{Message: "request cannot be nil"}
		}
		ids = append(ids, strconv.FormatInt(request.ID, 10))
	}

	log.WithField("requests", len(ids)).Debug("Submitting request rejection")
	err := s.api.RejectRequests(ctx, &api.RejectRequestsRequest{
		IDs:     ids,
		Comment: comment,
	})
	if err != nil {
		return s.errMapper.MapError(err, "requests", "")
	}
	return nil
}
