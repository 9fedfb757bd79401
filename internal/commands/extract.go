package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/pipeline"
	"github.com/extrato-dev/extrato/internal/profile"
)

func newExtractCommand() *cobra.Command {
	var profileName string
	var profilesPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract and normalize one or more statement files",
		Long: `Extract reads each statement file (xlsx, xls, csv or txt), discovers the
header row and column roles for the selected institution profile, and writes
one normalized output file per sheet next to the input. Files are independent:
a failure in one never stops the rest of the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr)
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			profiles := profile.Builtin()
			if profilesPath != "" {
				extra, err := profile.Load(profilesPath)
				if err != nil {
					return err
				}
				profiles = append(profiles, extra...)
			}
			p, err := profile.Find(profiles, profileName)
			if err != nil {
				return err
			}

			engine := pipeline.New(logger)
			processed := 0
			for _, path := range args {
				results, err := engine.ProcessFile(path, p)
				if err != nil {
					logger.Error("file skipped", "file", path, "err", err)
					continue
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", r.Output)
					processed++
				}
			}

			if processed == 0 {
				return fmt.Errorf("no sheets could be extracted")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "banestes", "institution profile")
	cmd.Flags().StringVar(&profilesPath, "profiles", "", "YAML file with additional profiles")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}
