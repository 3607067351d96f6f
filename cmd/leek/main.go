// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"leek/internal/config"
)

var log = commonlog.GetLogger("leek.cli")

var (
	flagConfig string
	flagColor  string
)

// cfg is loaded once per invocation before any subcommand runs.
var cfg = config.Default()

// errReported means the failure was already printed.
var errReported = errors.New("reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "leek",
	Short:         "Parse and inspect leek programs",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setColor(flagColor); err != nil {
			return err
		}
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		cfg.ConfigureLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to leek.yaml (default: ./leek.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output: auto|always|never")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(grammarCmd)
	rootCmd.AddCommand(explainCmd)
}

func setColor(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		fd := os.Stdout.Fd()
		color.NoColor = os.Getenv("NO_COLOR") != "" ||
			!(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	default:
		return fmt.Errorf("invalid --color %q: must be auto, always or never", mode)
	}
	return nil
}
