package common

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// --------------------------------------------------------------------------
// Request Envelope
// --------------------------------------------------------------------------

// Payload is the request envelope sent from a client to the server.
// The Data field is kept as raw JSON so that the envelope itself is
// type-erased: the server routes on Command alone and the application
// decodes Data into whatever shape it registered the handler for.
type Payload struct {
	// RequestID uniquely identifies this request. It is assigned once at
	// construction and echoed back verbatim in the matching Response.
	RequestID string `json:"request_id"`

	// Command names the handler that should process this request.
	Command string `json:"command"`

	// Data is the application-defined request body.
	Data json.RawMessage `json:"data"`
}

// NewPayload creates a new request envelope for the given command. The data
// value is encoded into the envelope and a fresh version-4 UUID is assigned
// as the request id. The caller never supplies the id.
func NewPayload[T any](command string, data T) (*Payload, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, WrapError(ErrCSerialization, "failed to encode payload data", err)
	}

	return &Payload{
		RequestID: uuid.NewString(),
		Command:   command,
		Data:      raw,
	}, nil
}

// DecodeData decodes the application-defined body of a request envelope
// into the given type. This is the typed counterpart of NewPayload: the
// expected shape exists only in the caller's type system, never on the wire.
func DecodeData[T any](p *Payload) (T, error) {
	var data T
	if err := json.Unmarshal(p.Data, &data); err != nil {
		return data, WrapError(ErrCSerialization, "failed to decode payload data", err)
	}
	return data, nil
}

// --------------------------------------------------------------------------
// Response Envelope
// --------------------------------------------------------------------------

// Response is the response envelope written back to the client. Exactly one
// of Data/Error is populated, determined by Success.
type Response struct {
	// RequestID equals the RequestID of the originating request.
	RequestID string `json:"request_id"`

	// Success reports whether the handler completed without error.
	Success bool `json:"success"`

	// Data is the application-defined response body. Present iff Success.
	Data json.RawMessage `json:"data,omitempty"`

	// Error describes the failure. Present iff not Success.
	Error string `json:"error,omitempty"`
}

// NewSuccessResponse creates a successful response for the given request id.
func NewSuccessResponse[R any](requestID string, data R) (*Response, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, WrapError(ErrCSerialization, "failed to encode response data", err)
	}

	return &Response{
		RequestID: requestID,
		Success:   true,
		Data:      raw,
	}, nil
}

// NewErrorResponse creates a failed response for the given request id.
func NewErrorResponse(requestID string, msg string) *Response {
	return &Response{
		RequestID: requestID,
		Success:   false,
		Error:     msg,
	}
}

// DecodeResponseData decodes the application-defined body of a response
// envelope into the given type. It returns an error for responses with
// Success=false since those carry no data by invariant.
func DecodeResponseData[R any](resp *Response) (R, error) {
	var data R
	if !resp.Success {
		return data, NewError(ErrCInvalidRequest, fmt.Sprintf("response %s carries no data (success=false)", resp.RequestID))
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return data, WrapError(ErrCSerialization, "failed to decode response data", err)
	}
	return data, nil
}
