package main

import (
	"github.com/dhamidi/ormxml/config"
	"github.com/dhamidi/ormxml/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			server := lsp.NewLSPServer(cfg, version)
			return server.RunStdio()
		},
	}
}
