package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"leek/internal/ast"
	lerrors "leek/internal/errors"
	"leek/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a file and report the first syntax error",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]

	prog, _, err := parseOrReport(cmd, path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Check failed after %s", formatDuration(time.Since(start))))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("%s: %d statements, %d declarations in %s",
		path, len(prog.Statements), len(ast.Declarations(prog)), formatDuration(time.Since(start))))
	return nil
}

// parseOrReport parses path and renders a parse failure with its source
// excerpt on stderr. Read failures are returned as they are.
func parseOrReport(cmd *cobra.Command, path string) (*ast.Program, string, error) {
	prog, source, err := parser.ParseFile(path)
	if err == nil {
		return prog, source, nil
	}

	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		return nil, "", err
	}
	log.Debugf("%s", perr)

	reporter := lerrors.NewErrorReporter(path, source)
	fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatError(lerrors.FromParseError(perr)))
	return nil, source, errReported
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
