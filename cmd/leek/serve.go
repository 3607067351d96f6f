package main

import (
	"github.com/spf13/cobra"

	"leek/internal/lsp"
)

var (
	flagTCP   string
	flagDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server on stdio, or on a TCP address with --tcp",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := lsp.NewServer(cfg, flagDebug)
		if flagTCP != "" {
			log.Infof("serving on %s", flagTCP)
			return s.RunTCP(flagTCP)
		}
		log.Info("serving on stdio")
		return s.RunStdio()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagTCP, "tcp", "", "listen on this address (e.g. 127.0.0.1:7998) instead of stdio")
	serveCmd.Flags().BoolVar(&flagDebug, "debug", false, "log every JSON-RPC message")
}
