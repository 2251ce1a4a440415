package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bemkit/pkg/bem"
)

func newResolveCmd() *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "resolve SPEC",
		Short: "Print the active modifiers of a spec, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := readSpec(cmd, args[0])
			if err != nil {
				return err
			}
			for _, m := range bem.Resolve(mods, bem.WithUnique(unique)) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), m); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop repeated modifiers")
	return cmd
}
