package bem

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseModifiers decodes a YAML or JSON document into a Modifier.
// Mapping key order is preserved. Strings become Names, sequences become
// Lists and mappings become Hashes. Non-string scalars in sequences
// (booleans, numbers, null) are inert and dropped.
//
// Valid JSON is decoded with ParseModifiersJSON, everything else as YAML.
//
//	m, err := bem.ParseModifiers([]byte(`["bar", [{"baz": true, "qux": 0}]]`))
func ParseModifiers(data []byte) (Modifier, error) {
	if json.Valid(data) {
		return ParseModifiersJSON(data)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Join(ErrInvalidSpec, err)
	}
	return fromNode(&node)
}

// UnmarshalYAML decodes a YAML mapping into an ordered Hash.
func (h *Hash) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected mapping, got %s", ErrInvalidSpec, kindName(value.Kind))
	}
	decoded, err := hashFromNode(value)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// Spec holds a Modifier decoded from YAML or JSON.
// It is meant to be used as a field in request and config payloads.
type Spec struct {
	value Modifier
}

// NewSpec wraps m.
func NewSpec(m Modifier) Spec {
	return Spec{value: m}
}

// Modifier returns the decoded modifier, nil when the payload had none.
func (s Spec) Modifier() Modifier {
	return s.value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	m, err := fromNode(value)
	if err != nil {
		return err
	}
	s.value = m
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Spec) UnmarshalJSON(data []byte) error {
	m, err := ParseModifiersJSON(data)
	if err != nil {
		return err
	}
	s.value = m
	return nil
}

func fromNode(n *yaml.Node) (Modifier, error) {
	n = resolveAlias(n)
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case 0:
		// empty document
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.ScalarNode:
		if n.ShortTag() == "!!str" {
			return Name(n.Value), nil
		}
		return nil, nil
	case yaml.SequenceNode:
		l := make(List, 0, len(n.Content))
		for _, child := range n.Content {
			m, err := fromNode(child)
			if err != nil {
				return nil, err
			}
			if m != nil {
				l = append(l, m)
			}
		}
		return l, nil
	case yaml.MappingNode:
		return hashFromNode(n)
	default:
		return nil, fmt.Errorf("%w: unsupported node kind %s", ErrInvalidSpec, kindName(n.Kind))
	}
}

func hashFromNode(n *yaml.Node) (Hash, error) {
	h := make(Hash, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i])
		val := resolveAlias(n.Content[i+1])

		var v any
		if err := val.Decode(&v); err != nil {
			return nil, errors.Join(ErrInvalidSpec, fmt.Errorf("modifier %q: %w", key.Value, err))
		}
		h = append(h, Flag{Name: key.Value, Value: v})
	}
	return h, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}
