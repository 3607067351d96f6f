package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leek/grammar"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the language grammar as EBNF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), grammar.EBNF())
		return err
	},
}
