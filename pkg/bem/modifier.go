package bem

import (
	"maps"
	"slices"

	"github.com/a-h/templ"
)

// Modifier is a modifier specification. The set of implementations is closed:
// Name, List and Hash. A nil Modifier means no modifiers.
type Modifier interface {
	modifier()
}

// Name is one or more whitespace-separated modifier names.
type Name string

// List is an ordered sequence of modifier specifications. It may nest to any depth.
// Nil entries contribute nothing.
type List []Modifier

// Hash is an ordered mapping from modifier name to value.
// A name is active when its value is truthy, see IsTruthy.
type Hash []Flag

// Flag is a single Hash entry.
type Flag struct {
	Name  string
	Value any
}

func (Name) modifier() {}
func (List) modifier() {}
func (Hash) modifier() {}

// KV creates a Flag. The name becomes active only when value is truthy.
//
//	bem.Hash{bem.KV("active", isActive), bem.KV("count", n)}
func KV(name string, value any) Flag {
	return Flag{Name: name, Value: value}
}

// Names wraps plain strings into a List.
func Names(names ...string) List {
	l := make(List, 0, len(names))
	for _, n := range names {
		l = append(l, Name(n))
	}
	return l
}

// Set converts a Go map into a Hash. Map iteration order is random,
// so keys are sorted to keep the output deterministic.
func Set[V any](m map[string]V) Hash {
	h := make(Hash, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		h = append(h, Flag{Name: k, Value: m[k]})
	}
	return h
}

// From adapts an arbitrary Go value into a Modifier.
//
// Supported inputs are string, []string, []any, map[string]bool, map[string]any,
// Flag, []Flag, templ.KeyValue[string, bool], []templ.KeyValue[string, bool]
// and any Modifier. Everything else (nil, bool, numbers, ...) yields nil and is
// therefore treated as "no modifiers".
func From(v any) Modifier {
	switch x := v.(type) {
	case nil:
		return nil
	case Modifier:
		return x
	case string:
		return Name(x)
	case []string:
		return Names(x...)
	case []any:
		l := make(List, 0, len(x))
		for _, item := range x {
			if m := From(item); m != nil {
				l = append(l, m)
			}
		}
		return l
	case map[string]bool:
		return Set(x)
	case map[string]any:
		return Set(x)
	case Flag:
		return Hash{x}
	case []Flag:
		return Hash(x)
	case templ.KeyValue[string, bool]:
		return Hash{{Name: x.Key, Value: x.Value}}
	case []templ.KeyValue[string, bool]:
		h := make(Hash, 0, len(x))
		for _, kv := range x {
			h = append(h, Flag{Name: kv.Key, Value: kv.Value})
		}
		return h
	default:
		return nil
	}
}
