package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"leek/internal/ast"
	"leek/internal/text"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <file>",
	Short: "List the functions and variables a file declares",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

type symbol struct {
	kind   string
	name   string
	detail string
	at     ast.Range
}

func runSymbols(cmd *cobra.Command, args []string) error {
	prog, source, err := parseOrReport(cmd, args[0])
	if err != nil {
		return err
	}

	var symbols []symbol
	for _, fn := range ast.Functions(prog) {
		params := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = p.Value
		}
		symbols = append(symbols, symbol{"function", fn.Name.Value, "(" + strings.Join(params, ", ") + ")", fn.Name.Range})
	}
	for _, decl := range ast.Declarations(prog) {
		symbols = append(symbols, symbol{"var", decl.Name, "", decl.Range})
	}
	sort.SliceStable(symbols, func(i, j int) bool { return symbols[i].at.Start < symbols[j].at.Start })

	buf := text.NewBuffer(source)
	kind := color.New(color.FgCyan).SprintFunc()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, s := range symbols {
		fmt.Fprintf(w, "%s\t%s%s\t%s\n", kind(s.kind), s.name, s.detail, buf.PositionAt(s.at.Start))
	}
	return w.Flush()
}
