package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lerrors "leek/internal/errors"
)

var explainCmd = &cobra.Command{
	Use:   "explain CODE",
	Short: "Describe a diagnostic code such as E0100",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := strings.ToUpper(args[0])
		description := lerrors.GetErrorDescription(code)
		if description == "Unknown error code" {
			return fmt.Errorf("unknown diagnostic code %q", args[0])
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", code, lerrors.GetErrorCategory(code), description)
		return err
	},
}
