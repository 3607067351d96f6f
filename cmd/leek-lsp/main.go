// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"leek/internal/config"
	"leek/internal/lsp"
)

var log = commonlog.GetLogger("leek.server")

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:           "leek-lsp",
	Short:         "Language server for leek over stdio",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to leek.yaml (default: ./leek.yaml if present)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log every JSON-RPC message")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "leek-lsp: %s\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg.ConfigureLogging()

	log.Infof("starting leek language server %s", lsp.Version)

	// stdout carries the protocol, so nothing else may write to it
	if err := lsp.NewServer(cfg, flagDebug).RunStdio(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
