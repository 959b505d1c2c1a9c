package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// JSONCodec encodes plain Go messages as JSON. It is registered under the name
// "json", replacing Connect's protobuf-only JSON codec.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON is the option every billsplit handler and client is built with.
func WithJSON() connect.Option {
	return connect.WithCodec(JSONCodec{})
}
