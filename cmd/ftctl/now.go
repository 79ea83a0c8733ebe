package main

import (
	"github.com/joshuapare/filetimekit/filetime"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newNowCmd())
}

func newNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time as a FILETIME",
		Long: `The now command captures the current system time and displays its
FILETIME representation.

Example:
  ftctl now
  ftctl now --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow()
		},
	}
	return cmd
}

func runNow() error {
	return printReport(buildReport(filetime.Now()))
}
