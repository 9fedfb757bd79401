package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/profile"
)

func newProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in institution profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range profile.Builtin() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s roles=%v", p.Name, p.RequiredRoles)
				if p.ReconstructBalance {
					fmt.Fprint(cmd.OutOrStdout(), " reconstructs-balance")
				}
				if p.ScanOpeningBalance {
					fmt.Fprint(cmd.OutOrStdout(), " scans-opening-balance")
				}
				if p.TrimTrailingRows > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), " trims-last=%d", p.TrimTrailingRows)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	return cmd
}
