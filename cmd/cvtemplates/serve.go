package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cvtemplates/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		grace time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			if cmd.Flags().Changed("grace") {
				a.cfg.ShutdownGrace = grace
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.gallery(cmd.Context())
			if err != nil {
				return err
			}
			srv, err := server.New(server.Options{
				Addr:          a.cfg.Addr,
				ShutdownGrace: a.cfg.ShutdownGrace,
				Gallery:       g,
				Logger:        a.logger,
			})
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().DurationVar(&grace, "grace", 0, "shutdown grace period")
	return cmd
}
