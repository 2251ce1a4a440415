package bem

import "github.com/dmitrymomot/bemkit/pkg/config"

// Config holds environment driven defaults for class name generation.
type Config struct {
	ElementSeparator  string `env:"BEM_ELEMENT_SEPARATOR" envDefault:"__"`
	ModifierSeparator string `env:"BEM_MODIFIER_SEPARATOR" envDefault:"--"`
	Unique            bool   `env:"BEM_UNIQUE" envDefault:"false"`
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
