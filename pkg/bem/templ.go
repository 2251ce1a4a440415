package bem

import "github.com/a-h/templ"

func toCSSClasses(tokens []string) templ.CSSClasses {
	classes := make(templ.CSSClasses, 0, len(tokens))
	for _, t := range tokens {
		classes = append(classes, t)
	}
	return classes
}

// Classes returns the block class list for use in templ attributes:
//
//	<div class={ card.Classes(bem.Hash{bem.KV("active", active)}) }>
func (b *Block) Classes(m Modifier) templ.CSSClasses {
	return toCSSClasses(ClassList(b.name, m, b.opts...))
}

// ElementClasses returns the element class list for use in templ attributes.
func (b *Block) ElementClasses(element string, m Modifier) (templ.CSSClasses, error) {
	base, err := JoinElement(b.name, element, b.opts...)
	if err != nil {
		return nil, err
	}
	return toCSSClasses(ClassList(base, m, b.opts...)), nil
}
