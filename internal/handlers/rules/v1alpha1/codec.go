package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype the rules service is served under.
// Clients select it with grpc.CallContentSubtype(CodecName).
const CodecName = "json"

// Codec marshals rules service messages as JSON
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes a message
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes a message
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the codec's content subtype
func (Codec) Name() string {
	return CodecName
}
