package bem_test

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bemkit/pkg/bem"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    bem.Modifier
		opts     []bem.Option
		expected []string
	}{
		{
			name:     "nil",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "flat names",
			input:    bem.Names("foo", "bar"),
			expected: []string{"foo", "bar"},
		},
		{
			name:     "deep nesting",
			input:    bem.List{bem.Name("a"), bem.List{bem.Name("b"), bem.List{bem.Name("c"), bem.List{bem.Name("d")}}}},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name: "hash truthiness keeps insertion order",
			input: bem.Hash{
				bem.KV("foo", true),
				bem.KV("bar", false),
				bem.KV("baz", 42),
				bem.KV("qux", 0),
			},
			expected: []string{"foo", "baz"},
		},
		{
			name:     "hash keys are not sorted",
			input:    bem.Hash{bem.KV("zeta", true), bem.KV("alpha", "yes")},
			expected: []string{"zeta", "alpha"},
		},
		{
			name:     "duplicates preserved",
			input:    bem.List{bem.Name("bar"), bem.List{bem.Hash{bem.KV("bar", true)}}},
			expected: []string{"bar", "bar"},
		},
		{
			name:     "duplicates removed with unique",
			input:    bem.List{bem.Name("bar"), bem.List{bem.Hash{bem.KV("bar", true)}}},
			opts:     []bem.Option{bem.Unique()},
			expected: []string{"bar"},
		},
		{
			name:     "unique keeps first occurrence order",
			input:    bem.List{bem.Name("b a"), bem.Name("c b"), bem.Name("a d")},
			opts:     []bem.Option{bem.Unique()},
			expected: []string{"b", "a", "c", "d"},
		},
		{
			name:     "string splitting",
			input:    bem.Name(" \n  foo \r\n  bar   "),
			expected: []string{"foo", "bar"},
		},
		{
			name:     "empty and nil entries are dropped",
			input:    bem.List{bem.Name(""), bem.List{}, bem.Name("foo"), nil, bem.Hash{}, bem.List(nil)},
			expected: []string{"foo"},
		},
		{
			name:     "empty hash key is dropped",
			input:    bem.Hash{bem.KV("", true), bem.KV("foo", true)},
			expected: []string{"foo"},
		},
		{
			name:     "mixed structure",
			input:    bem.List{bem.Name("a b"), bem.Hash{bem.KV("c", true)}, bem.List{bem.Name("d"), bem.Hash{bem.KV("e", "x"), bem.KV("f", nil)}}},
			expected: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bem.Resolve(tt.input, tt.opts...)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve_FlatInputIsIdentity(t *testing.T) {
	input := []string{"one", "two", "two", "three"}
	assert.Equal(t, input, bem.Resolve(bem.Names(input...)))
}

func TestResolve_DeeplyNested(t *testing.T) {
	const depth = 100000

	var m bem.Modifier = bem.Name("leaf")
	for range depth {
		m = bem.List{m}
	}

	assert.Equal(t, []string{"leaf"}, bem.Resolve(m))
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "nil", input: nil, expected: []string{}},
		{name: "false behaves like absent", input: false, expected: []string{}},
		{name: "number is inert", input: 42, expected: []string{}},
		{name: "string", input: "foo bar", expected: []string{"foo", "bar"}},
		{name: "string slice", input: []string{"foo", "bar"}, expected: []string{"foo", "bar"}},
		{
			name:     "any slice drops garbage",
			input:    []any{"", []any{}, "foo", true, false, 42, nil},
			expected: []string{"foo"},
		},
		{
			name:     "nested any slice",
			input:    []any{"a", []any{"b", []any{"c", []any{"d"}}}},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "bool map is sorted",
			input:    map[string]bool{"zeta": true, "alpha": true, "off": false},
			expected: []string{"alpha", "zeta"},
		},
		{
			name:     "any map uses truthiness",
			input:    map[string]any{"a": 1, "b": 0, "c": "", "d": "x"},
			expected: []string{"a", "d"},
		},
		{name: "flag", input: bem.KV("foo", true), expected: []string{"foo"}},
		{name: "flag slice", input: []bem.Flag{bem.KV("a", true), bem.KV("b", false)}, expected: []string{"a"}},
		{name: "templ key value", input: templ.KV("active", true), expected: []string{"active"}},
		{
			name:     "templ key value slice",
			input:    []templ.KeyValue[string, bool]{templ.KV("a", false), templ.KV("b", true)},
			expected: []string{"b"},
		},
		{name: "modifier passes through", input: bem.Name("foo"), expected: []string{"foo"}},
		{name: "unsupported type", input: struct{}{}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bem.Resolve(bem.From(tt.input)))
		})
	}
}

func TestSet(t *testing.T) {
	h := bem.Set(map[string]bool{"b": true, "a": false, "c": true})
	assert.Equal(t, bem.Hash{bem.KV("a", false), bem.KV("b", true), bem.KV("c", true)}, h)
}
