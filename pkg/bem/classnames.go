package bem

import "github.com/dmitrymomot/bemkit/pkg/classnames"

// ClassList resolves m and joins the result onto base.
//
//	bem.ClassList("btn", bem.Hash{bem.KV("primary", true)}) // ["btn", "btn--primary"]
func ClassList(base string, m Modifier, opts ...Option) []string {
	return JoinModifiers(base, Resolve(m, opts...), opts...)
}

// ClassNames builds the class attribute value for base with modifiers m,
// followed by the tokens of existing. Empty tokens are dropped and the rest
// are joined by a single space. An empty base produces no BEM tokens at all.
//
//	bem.ClassNames("foo", bem.List{bem.Name("bar"), bem.Hash{bem.KV("baz", true)}}, "qux")
//	// "foo foo--bar foo--baz qux"
func ClassNames(base string, m Modifier, existing string, opts ...Option) string {
	if base == "" {
		return classnames.Join(existing)
	}
	tokens := ClassList(base, m, opts...)
	tokens = append(tokens, classnames.Split(existing)...)
	return classnames.Join(tokens...)
}
