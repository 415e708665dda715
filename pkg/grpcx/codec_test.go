package grpcx

import (
	"testing"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Il codec e' registrato e fa round-trip di struct Go semplici.
func TestJSONCodecStruct(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	if codec == nil {
		t.Fatalf("expected codec %q to be registered", CodecName)
	}

	type payload struct {
		CareerID string `json:"career_id"`
	}
	data, err := codec.Marshal(payload{CareerID: "abc"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"career_id":"abc"}` {
		t.Fatalf("unexpected json %s", data)
	}

	var out payload
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.CareerID != "abc" {
		t.Fatalf("unexpected career_id %q", out.CareerID)
	}
}

// I messaggi protobuf passano da protojson.
func TestJSONCodecProto(t *testing.T) {
	codec := JSONCodec{}
	data, err := codec.Marshal(wrapperspb.String("4-3-3"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &wrapperspb.StringValue{}
	if err := codec.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.GetValue() != "4-3-3" {
		t.Fatalf("unexpected value %q", out.GetValue())
	}
}
