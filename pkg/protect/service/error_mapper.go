package service

import (
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"

	"github.com/taurushq-io/protect-sdk-go/internal/api"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

// ErrorMapper translates transport failures into the SDK error taxonomy.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper.
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a transport error. resource and id name the entity a
// NotFoundError should report; id may be empty for listings.
func (m *ErrorMapper) MapError(err error, resource, id string) error {
	if err == nil {
		return nil
	}

	apiErr := &api.Error{}
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == codes.NotFound || apiErr.StatusCode() == http.StatusNotFound:
			return &model.NotFoundError{Resource: resource, ID: id}
		case apiErr.Code == codes.InvalidArgument:
			return &model.ValidationError{Message: apiErr.Message}
		}
		return &model.TransportError{
			StatusCode: apiErr.StatusCode(),
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	return &model.TransportError{Message: err.Error(), Err: err}
}
