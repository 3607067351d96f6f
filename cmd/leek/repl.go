package main

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"leek/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "there"
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the leek REPL, %s!\n", name)
		return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
