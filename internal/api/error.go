package api

import (
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
)

// maxErrorBodyBytes caps how much of an unparseable error body is carried
// into the error message.
const maxErrorBodyBytes = 512

// Error is a non-2xx platform reply. Code is the gRPC status code announced
// in the body when the body was a google.rpc.Status message, codes.Unknown
// otherwise.
type Error struct {
	HTTPStatus int
	Code       codes.Code
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.StatusCode(), e.Message)
}

// StatusCode returns the HTTP status of the reply, falling back to the
// canonical gateway mapping of the gRPC code when no transport status was
// recorded.
func (e *Error) StatusCode() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return runtime.HTTPStatusFromCode(e.Code)
}

// decodeError turns an error reply into an *Error. Gateway error bodies are
// google.rpc.Status messages; anything else is kept verbatim.
func decodeError(httpStatus int, body []byte) error {
	st := &statuspb.Status{}
	opts := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(body, st); err == nil && (st.GetCode() != 0 || st.GetMessage() != "") {
		return &Error{
			HTTPStatus: httpStatus,
			Code:       codes.Code(st.GetCode()),
			Message:    st.GetMessage(),
		}
	}

	message := strings.TrimSpace(string(body))
	if len(message) > maxErrorBodyBytes {
		message = message[:maxErrorBodyBytes]
	}
	return &Error{
		HTTPStatus: httpStatus,
		Code:       codes.Unknown,
		Message:    message,
	}
}
