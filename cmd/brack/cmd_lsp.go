package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/ahi-dev/brack/lsp"
)

func newLSPCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)
			server := lsp.NewServer("0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "add a log verbosity level")

	return cmd
}
