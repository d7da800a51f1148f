package client

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName selects the JSON wire encoding on a per-call basis via
// grpc.CallContentSubtype. The job manager speaks JSON payloads, so the
// handle carries them as-is instead of a generated protobuf schema.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode json payload: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return CodecName
}
