package bem

const (
	// DefaultElementSeparator appears between a block and an element (block__element).
	DefaultElementSeparator = "__"
	// DefaultModifierSeparator appears between a block or element and a modifier (block--modifier).
	DefaultModifierSeparator = "--"
)

// Option configures joining and resolution.
type Option func(*options)

type options struct {
	elementSeparator  string
	modifierSeparator string
	unique            bool
}

func defaultOptions() options {
	return options{
		elementSeparator:  DefaultElementSeparator,
		modifierSeparator: DefaultModifierSeparator,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithElementSeparator sets the string placed between a block and an element.
// Default is "__".
func WithElementSeparator(sep string) Option {
	return func(o *options) {
		o.elementSeparator = sep
	}
}

// WithModifierSeparator sets the string placed between a block or element and a modifier.
// Default is "--".
func WithModifierSeparator(sep string) Option {
	return func(o *options) {
		o.modifierSeparator = sep
	}
}

// Unique drops repeated modifier names, keeping the first occurrence.
func Unique() Option {
	return WithUnique(true)
}

// WithUnique toggles modifier deduplication.
func WithUnique(enabled bool) Option {
	return func(o *options) {
		o.unique = enabled
	}
}

// WithConfig applies separators and the unique flag from cfg.
// Empty separators in cfg keep the current values.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.ElementSeparator != "" {
			o.elementSeparator = cfg.ElementSeparator
		}
		if cfg.ModifierSeparator != "" {
			o.modifierSeparator = cfg.ModifierSeparator
		}
		o.unique = cfg.Unique
	}
}
