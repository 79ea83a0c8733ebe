package main

import (
	"fmt"
	"time"

	"github.com/joshuapare/filetimekit/filetime"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEncodeCmd())
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <rfc3339-instant>",
		Short: "Encode an instant as a FILETIME",
		Long: `The encode command converts an RFC 3339 instant to its FILETIME
representation: the tick count and the little-endian bytes to write into a
binary structure. Precision below 100ns is truncated.

Example:
  ftctl encode 2009-07-25T23:00:00.0001Z
  ftctl encode 1970-01-01T00:00:00Z --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	t, err := time.Parse(time.RFC3339Nano, args[0])
	if err != nil {
		return fmt.Errorf("invalid RFC 3339 instant %q: %w", args[0], err)
	}
	printVerbose("Parsed instant: %s\n", t.UTC().Format(time.RFC3339Nano))
	return printReport(buildReport(filetime.FromTime(t)))
}
