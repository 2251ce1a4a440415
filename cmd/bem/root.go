package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bemkit/pkg/bem"
	"github.com/dmitrymomot/bemkit/pkg/config"
	"github.com/dmitrymomot/bemkit/pkg/logger"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

// sepFlags are the flags shared by every command that joins class names.
type sepFlags struct {
	element  string
	modifier string
	unique   bool
}

func (f *sepFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.element, "element-sep", "", "separator between block and element (default from BEM_ELEMENT_SEPARATOR or \"__\")")
	cmd.Flags().StringVar(&f.modifier, "modifier-sep", "", "separator between base and modifier (default from BEM_MODIFIER_SEPARATOR or \"--\")")
	cmd.Flags().BoolVarP(&f.unique, "unique", "u", false, "drop repeated modifiers")
}

// options merges environment defaults with explicitly set flags.
func (f *sepFlags) options(cmd *cobra.Command) ([]bem.Option, error) {
	cfg, err := bem.LoadConfig()
	if err != nil {
		return nil, err
	}
	opts := []bem.Option{bem.WithConfig(cfg)}
	if cmd.Flags().Changed("element-sep") {
		opts = append(opts, bem.WithElementSeparator(f.element))
	}
	if cmd.Flags().Changed("modifier-sep") {
		opts = append(opts, bem.WithModifierSeparator(f.modifier))
	}
	if f.unique {
		opts = append(opts, bem.Unique())
	}
	return opts, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bem",
		Short:         "Build BEM (block__element--modifier) class names",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassesCmd(),
		newResolveCmd(),
		newServeCmd(),
	)
	return root
}

func newLogger(w io.Writer) (*slog.Logger, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "bem"),
		logger.WithOutput(w),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// readSpec parses a modifier spec argument. "-" reads it from stdin.
func readSpec(cmd *cobra.Command, arg string) (bem.Modifier, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	data := []byte(arg)
	if arg == "-" {
		var err error
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return nil, err
		}
	}
	return bem.ParseModifiers(data)
}
