package serializer

import "github.com/shaik-zeeshan/circle/rpc/common"

// IRPCSerializer is the interface for all envelope serializers
type IRPCSerializer interface {
	// SerializePayload serializes a request envelope into a byte array
	// It returns the serialized byte array and an error if any
	SerializePayload(p *common.Payload) ([]byte, error)
	// DeserializePayload deserializes a byte array into a request envelope
	// It takes a byte array and a pointer to a Payload as parameters
	// It returns an error if any
	DeserializePayload(b []byte, p *common.Payload) error
	// SerializeResponse serializes a response envelope into a byte array
	SerializeResponse(r *common.Response) ([]byte, error)
	// DeserializeResponse deserializes a byte array into a response envelope
	DeserializeResponse(b []byte, r *common.Response) error
}
