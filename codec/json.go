package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It is the most portable option: snapshots written with it can be
// inspected with any JSON tooling. Prefer the default codec when
// encode/decode throughput matters.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used for newly written snapshots.
// Existing files are self-describing and decode with the codec named
// in their header.
var Default Codec = GoJSON{}
