package grpcx

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName e' il content-subtype usato dal contratto career (application/grpc+json).
const CodecName = "json"

// JSONCodec serializza i messaggi del contratto career come JSON.
// I messaggi protobuf (health check, errdetails) passano da protojson.
type JSONCodec struct{}

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	if msg, ok := v.(proto.Message); ok {
		return protojson.Marshal(msg)
	}
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if msg, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, msg)
	}
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return CodecName
}
