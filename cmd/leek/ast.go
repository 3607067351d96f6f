package main

import (
	"github.com/spf13/cobra"

	"leek/internal/ast"
	"leek/internal/text"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree with line:column ranges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, source, err := parseOrReport(cmd, args[0])
		if err != nil {
			return err
		}

		buf := text.NewBuffer(source)
		return ast.Fdump(cmd.OutOrStdout(), prog, func(r ast.Range) string {
			return buf.RangeOf(r.Start, r.End).String()
		})
	},
}
