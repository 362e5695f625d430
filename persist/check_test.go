package persist

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	Name string
	Next *node
}

type withMap struct {
	Name  string
	Index map[string]int
}

type withHidden struct {
	Name   string
	hidden map[string]int
	Cache  map[string]int `yaml:"-"`
}

type hooked struct {
	runtime map[string]int
	Runtime map[string]int
}

func (h *hooked) BeforeSerialize()  {}
func (h *hooked) AfterDeserialize() {}

func TestCheck(t *testing.T) {
	var testCases = []struct {
		name    string
		value   any
		wantErr bool
		path    string
	}{
		{name: "string", value: ""},
		{name: "int", value: 0},
		{name: "float", value: 1.5},
		{name: "slice", value: []string{}},
		{name: "array", value: [3]int{}},
		{name: "bytes", value: []byte{}},
		{name: "recursive struct", value: node{}},
		{name: "time", value: time.Time{}},
		{name: "hidden and skipped fields", value: withHidden{}},
		{name: "receiver", value: hooked{}},
		{name: "map", value: map[string]int{}, wantErr: true},
		{name: "map field", value: withMap{}, wantErr: true, path: "persist.withMap.Index"},
		{name: "complex", value: complex(1, 2), wantErr: true},
		{name: "func", value: func() {}, wantErr: true},
		{name: "chan", value: make(chan int), wantErr: true},
		{name: "slice of maps", value: []map[string]int{}, wantErr: true, path: "[]map[string]int[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(reflect.TypeOf(tc.value))
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedElementType))
			var unsupported *UnsupportedElementTypeError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tc.path, unsupported.Path)
		})
	}
}

func TestCheck_Interface(t *testing.T) {
	err := CheckOf[any]()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedElementType)
	assert.Contains(t, err.Error(), "interface")
}

func TestCheck_NilType(t *testing.T) {
	assert.ErrorIs(t, Check(nil), ErrUnsupportedElementType)
}

func TestCodecFor(t *testing.T) {
	for _, name := range []string{"", "yaml", "YML", ".yaml"} {
		codec, err := CodecFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, YAMLFormat, codec.Name())
	}
	codec, err := CodecFor(".json")
	require.NoError(t, err)
	assert.Equal(t, JSONFormat, codec.Name())

	_, err = CodecFor("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCodec_RoundTrip(t *testing.T) {
	type doc struct {
		Name  string   `yaml:"name" json:"name"`
		Items []string `yaml:"items" json:"items"`
	}
	for _, codec := range []Codec{YAML(), JSON()} {
		t.Run(codec.Name(), func(t *testing.T) {
			in := doc{Name: "a", Items: []string{"x", "y"}}
			data, err := codec.Marshal(in)
			require.NoError(t, err)
			var out doc
			require.NoError(t, codec.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}
