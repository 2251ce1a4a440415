package bem_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bemkit/pkg/bem"
)

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty document", input: "", expected: []string{}},
		{name: "null", input: "null", expected: []string{}},
		{name: "false", input: "false", expected: []string{}},
		{name: "json string", input: `"foo bar"`, expected: []string{"foo", "bar"}},
		{name: "json nested", input: `["a", ["b", ["c", ["d"]]]]`, expected: []string{"a", "b", "c", "d"}},
		{
			name:     "json object keeps key order",
			input:    `{"zeta": true, "bar": false, "baz": 42, "qux": 0, "alpha": "x"}`,
			expected: []string{"zeta", "baz", "alpha"},
		},
		{
			name:     "json garbage",
			input:    `["", [], "foo", true, false, 42, null]`,
			expected: []string{"foo"},
		},
		{
			name:     "json object values",
			input:    `{"list": [], "obj": {}, "none": null, "empty": ""}`,
			expected: []string{"list", "obj"},
		},
		{
			name: "yaml",
			input: `
- bar
- - baz: true
    off: false
    quoted: "false"
`,
			expected: []string{"bar", "baz", "quoted"},
		},
		{
			name: "yaml alias",
			input: `
base: &on true
other: *on
`,
			expected: []string{"base", "other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := bem.ParseModifiers([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bem.Resolve(m))
		})
	}
}

func TestParseModifiers_JSONSemantics(t *testing.T) {
	longKey := strings.Repeat("k", 1100)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "escaped solidus", input: `["w-1\/2"]`, expected: []string{"w-1/2"}},
		{name: "unicode escape", input: `"caf\u00e9"`, expected: []string{"café"}},
		{name: "long key", input: `{"` + longKey + `": true}`, expected: []string{longKey}},
		{name: "duplicate key last value wins", input: `{"active":true,"active":false}`, expected: []string{}},
		{name: "duplicate key keeps first position", input: `{"a":false,"b":true,"a":1}`, expected: []string{"a", "b"}},
		{name: "nested value with duplicate keys", input: `{"a":{"x":1,"x":2}}`, expected: []string{"a"}},
		{name: "zero float", input: `{"a":0.0,"b":-0,"c":1e3}`, expected: []string{"c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := bem.ParseModifiers([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bem.Resolve(m))

			var s bem.Spec
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.expected, bem.Resolve(s.Modifier()))
		})
	}
}

func TestParseModifiersJSON_Invalid(t *testing.T) {
	_, err := bem.ParseModifiersJSON([]byte(`["a"] ["b"]`))
	assert.ErrorIs(t, err, bem.ErrInvalidSpec)

	_, err = bem.ParseModifiersJSON([]byte(`{"a":`))
	assert.ErrorIs(t, err, bem.ErrInvalidSpec)
}

func TestParseModifiers_Invalid(t *testing.T) {
	_, err := bem.ParseModifiers([]byte(`{"foo": [`))
	assert.ErrorIs(t, err, bem.ErrInvalidSpec)
}

func TestSpec_UnmarshalJSON(t *testing.T) {
	var req struct {
		Block     string   `json:"block"`
		Modifiers bem.Spec `json:"modifiers"`
	}
	err := json.Unmarshal([]byte(`{"block":"foo","modifiers":["bar",[{"baz":true}]]}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "foo foo--bar foo--baz", bem.ClassNames(req.Block, req.Modifiers.Modifier(), ""))
}

func TestSpec_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Modifiers bem.Spec `yaml:"modifiers"`
	}
	err := yaml.Unmarshal([]byte("modifiers:\n  - a\n  - b: 1\n"), &doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, bem.Resolve(doc.Modifiers.Modifier()))

	assert.Nil(t, bem.Spec{}.Modifier())
	assert.Equal(t, bem.Name("x"), bem.NewSpec(bem.Name("x")).Modifier())
}

func TestHash_UnmarshalYAML(t *testing.T) {
	var h bem.Hash
	require.NoError(t, yaml.Unmarshal([]byte("b: true\na: false\nc: 2\n"), &h))
	assert.Equal(t, bem.Hash{bem.KV("b", true), bem.KV("a", false), bem.KV("c", 2)}, h)

	err := yaml.Unmarshal([]byte("- a\n- b\n"), &h)
	assert.ErrorIs(t, err, bem.ErrInvalidSpec)
}
