package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bemkit/pkg/bem"
)

func newClassesCmd() *cobra.Command {
	var (
		seps      sepFlags
		element   string
		modifiers string
		class     string
	)

	cmd := &cobra.Command{
		Use:   "classes BLOCK",
		Short: "Print the class attribute for a block or element",
		Example: `  bem classes foo --modifiers '["bar", {"baz": true}]' --class qux
  foo foo--bar foo--baz qux

  bem classes card --element title --modifiers 'large'
  card__title card__title--large`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := seps.options(cmd)
			if err != nil {
				return err
			}

			base := args[0]
			if base == "" {
				return bem.ErrMissingBlock
			}
			if element != "" {
				if base, err = bem.JoinElement(args[0], element, opts...); err != nil {
					return err
				}
			}

			mods, err := readSpec(cmd, modifiers)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), bem.ClassNames(base, mods, class, opts...))
			return err
		},
	}

	seps.register(cmd)
	cmd.Flags().StringVarP(&element, "element", "e", "", "element name")
	cmd.Flags().StringVarP(&modifiers, "modifiers", "m", "", "modifier spec as YAML or JSON, \"-\" reads stdin")
	cmd.Flags().StringVarP(&class, "class", "c", "", "extra class names appended to the output")
	return cmd
}
