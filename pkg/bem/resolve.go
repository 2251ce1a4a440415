package bem

import "strings"

// Resolve flattens m into the ordered list of active modifier names.
//
// Names are split on whitespace, Lists are walked depth-first left to right,
// and Hash entries are kept in insertion order when their value is truthy.
// Duplicates are preserved unless the Unique option is given, in which case
// the first occurrence wins. The result is never nil.
//
// The walk uses an explicit stack, so deeply nested input cannot exhaust the
// goroutine stack. Cyclic Lists are not supported.
func Resolve(m Modifier, opts ...Option) []string {
	o := applyOptions(opts)

	r := resolver{out: make([]string, 0)}
	if o.unique {
		r.seen = make(map[string]struct{})
	}

	if m == nil {
		return r.out
	}

	stack := []Modifier{m}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := top.(type) {
		case Name:
			for _, tok := range strings.Fields(string(v)) {
				r.add(tok)
			}
		case List:
			// Push in reverse so the leftmost child is popped first.
			for i := len(v) - 1; i >= 0; i-- {
				if v[i] != nil {
					stack = append(stack, v[i])
				}
			}
		case Hash:
			for _, f := range v {
				if IsTruthy(f.Value) {
					r.add(f.Name)
				}
			}
		}
	}

	return r.out
}

type resolver struct {
	out  []string
	seen map[string]struct{}
}

func (r *resolver) add(name string) {
	if name == "" {
		return
	}
	if r.seen != nil {
		if _, ok := r.seen[name]; ok {
			return
		}
		r.seen[name] = struct{}{}
	}
	r.out = append(r.out, name)
}
