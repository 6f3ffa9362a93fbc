package serializer

import (
	"encoding/json"

	"github.com/shaik-zeeshan/circle/rpc/common"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() IRPCSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IRPCSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) SerializePayload(p *common.Payload) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, common.WrapError(common.ErrCSerialization, "failed to encode request envelope", err)
	}
	return b, nil
}

func (j jsonSerializerImpl) DeserializePayload(b []byte, p *common.Payload) error {
	if err := json.Unmarshal(b, p); err != nil {
		return common.WrapError(common.ErrCSerialization, "failed to decode request envelope", err)
	}
	return nil
}

func (j jsonSerializerImpl) SerializeResponse(r *common.Response) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, common.WrapError(common.ErrCSerialization, "failed to encode response envelope", err)
	}
	return b, nil
}

func (j jsonSerializerImpl) DeserializeResponse(b []byte, r *common.Response) error {
	if err := json.Unmarshal(b, r); err != nil {
		return common.WrapError(common.ErrCSerialization, "failed to decode response envelope", err)
	}
	return nil
}
