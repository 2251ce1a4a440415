package bem

// Block builds class names for a single BEM block.
// A Block is immutable and safe for concurrent use.
type Block struct {
	name string
	opts []Option
}

// NewBlock returns a Block for name. Options set the separators and
// deduplication used by every class name the Block produces.
func NewBlock(name string, opts ...Option) (*Block, error) {
	if name == "" {
		return nil, ErrMissingBlock
	}
	return &Block{name: name, opts: append([]Option(nil), opts...)}, nil
}

// MustBlock is like NewBlock but panics on an empty name.
// Intended for package level declarations.
//
//	var card = bem.MustBlock("card")
func MustBlock(name string, opts ...Option) *Block {
	b, err := NewBlock(name, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Name returns the block name.
func (b *Block) Name() string {
	return b.name
}

// Class returns the block selector followed by its modifiers, e.g. "foo foo--bar".
func (b *Block) Class(m Modifier) string {
	return ClassNames(b.name, m, "", b.opts...)
}

// Element returns the element selector followed by its modifiers, e.g. "foo__bar foo__bar--baz".
func (b *Block) Element(element string, m Modifier) (string, error) {
	base, err := JoinElement(b.name, element, b.opts...)
	if err != nil {
		return "", err
	}
	return ClassNames(base, m, "", b.opts...), nil
}

// MustElement is like Element but panics when element is empty.
func (b *Block) MustElement(element string, m Modifier) string {
	s, err := b.Element(element, m)
	if err != nil {
		panic(err)
	}
	return s
}

// With returns the block class names with extra class tokens appended.
func (b *Block) With(m Modifier, existing string) string {
	return ClassNames(b.name, m, existing, b.opts...)
}
