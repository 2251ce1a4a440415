// Package bem builds CSS class names that follow the BEM (Block, Element, Modifier)
// naming convention.
//
// A class list always starts with its base selector, a block ("card") or a block
// joined with an element ("card__title"), followed by one token per active
// modifier ("card--active").
//
// # Modifiers
//
// Modifiers are described by the closed Modifier type:
//
//   - Name: one or more whitespace-separated names, e.g. bem.Name("large primary")
//   - List: an ordered, arbitrarily nested sequence of modifiers
//   - Hash: an ordered set of name/value pairs; a name is active when its value is truthy
//   - nil: no modifiers
//
// Resolve flattens a Modifier depth-first, left to right:
//
//	bem.Resolve(bem.List{
//		bem.Name("a"),
//		bem.List{bem.Name("b"), bem.Hash{bem.KV("c", true), bem.KV("d", 0)}},
//	})
//	// ["a", "b", "c"]
//
// Duplicates are kept unless the Unique option is passed. Truthiness is decided
// by IsTruthy: nil, false, "", numeric zero and nil references are falsy.
//
// From, Set and Names adapt plain Go values, and ParseModifiers decodes the same
// structure from YAML or JSON while preserving key order.
//
// # Joining
//
//	bem.JoinElement("card", "title")                         // "card__title", nil
//	bem.JoinModifiers("card", []string{"active"})            // ["card", "card--active"]
//	bem.ClassNames("card", bem.Name("active"), "shadow-sm") // "card card--active shadow-sm"
//
// JoinElement is the only operation that fails: it returns ErrMissingBlock or
// ErrMissingElement, both wrapping ErrInvalidArgument.
//
// # Blocks
//
// Block binds a block name to a set of options, which is convenient in templates:
//
//	var card = bem.MustBlock("card", bem.WithModifierSeparator("_"))
//
//	card.Class(bem.Hash{bem.KV("active", true)})   // "card card_active"
//	card.MustElement("title", bem.Name("large"))    // "card__title card__title_large"
//
// Classes and ElementClasses return templ.CSSClasses for use in templ components.
//
// # Configuration
//
// Default separators can be loaded from the environment with LoadConfig and
// applied through WithConfig:
//
//	BEM_ELEMENT_SEPARATOR   (default "__")
//	BEM_MODIFIER_SEPARATOR  (default "--")
//	BEM_UNIQUE              (default false)
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package bem
