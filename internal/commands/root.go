// Package commands wires the CLI surface of extrato.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "extrato",
		Short:   "Normalize bank statement exports into a canonical ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newProfilesCommand())

	return rootCmd
}
