package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the API services are served with
const CodecName = "json"

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec carries the API messages as JSON over gRPC
type JSONCodec struct{}

// Marshal implements encoding.Codec
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name implements encoding.Codec
func (JSONCodec) Name() string {
	return CodecName
}

// CallOption selects the JSON codec on a client call
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
