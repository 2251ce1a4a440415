package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bemkit/internal/api"
	"github.com/dmitrymomot/bemkit/internal/server"
	"github.com/dmitrymomot/bemkit/pkg/bem"
	"github.com/dmitrymomot/bemkit/pkg/config"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the class name HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var srvCfg server.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				srvCfg.Addr = addr
			}

			bemCfg, err := bem.LoadConfig()
			if err != nil {
				return err
			}

			handler := api.New(log, bem.WithConfig(bemCfg)).Routes()
			return server.New(srvCfg, log).Run(cmd.Context(), handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (default from HTTP_ADDR)")
	return cmd
}
