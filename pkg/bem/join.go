package bem

// JoinElement joins a block with an element: block + separator + element.
// It returns ErrMissingBlock or ErrMissingElement (both ErrInvalidArgument)
// when either name is empty.
func JoinElement(block, element string, opts ...Option) (string, error) {
	if block == "" {
		return "", ErrMissingBlock
	}
	if element == "" {
		return "", ErrMissingElement
	}
	o := applyOptions(opts)
	return block + o.elementSeparator + element, nil
}

// JoinModifiers returns base followed by base + separator + modifier for every
// modifier, in order and including duplicates. The base is not validated.
func JoinModifiers(base string, modifiers []string, opts ...Option) []string {
	o := applyOptions(opts)
	out := make([]string, 0, len(modifiers)+1)
	out = append(out, base)
	for _, m := range modifiers {
		out = append(out, base+o.modifierSeparator+m)
	}
	return out
}
