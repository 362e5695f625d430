package persist

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes whole documents. Values implementing the
// yaml.v3 or encoding/json marshaler interfaces (synced.Map does) run their
// serialization hooks from inside Marshal and Unmarshal.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

const (
	// YAMLFormat names the YAML codec.
	YAMLFormat = "yaml"
	// JSONFormat names the JSON codec.
	JSONFormat = "json"
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return YAMLFormat }

func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type jsonCodec struct{ indent string }

func (jsonCodec) Name() string { return JSONFormat }

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", c.indent)
}

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// YAML returns the YAML codec.
func YAML() Codec { return yamlCodec{} }

// JSON returns the JSON codec; output is indented with two spaces.
func JSON() Codec { return jsonCodec{indent: "  "} }

// CodecFor returns the codec registered under name. An empty name selects
// YAML. File extensions ("yml", ".json") are accepted too.
func CodecFor(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", YAMLFormat, "yml":
		return YAML(), nil
	case JSONFormat:
		return JSON(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
