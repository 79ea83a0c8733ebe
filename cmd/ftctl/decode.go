package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/filetimekit/filetime"
	"github.com/spf13/cobra"
)

var decodeBytes bool

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().BoolVar(&decodeBytes, "bytes", false, "Interpret the argument as raw little-endian hex bytes")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <value>",
		Short: "Decode a FILETIME value",
		Long: `The decode command interprets a FILETIME value and displays every
representation of it: the calendar instant, the raw tick count, the
seconds/nanoseconds decomposition, and the on-disk byte layout.

The value is a decimal tick count, a 0x-prefixed hex tick count, or (with
--bytes) the 8 raw bytes as hex, in the little-endian order they appear on
disk.

Example:
  ftctl decode 128930364000001000
  ftctl decode 0x01CA0D7BA2FB5BE8
  ftctl decode --bytes "CE EB 7D 1A 61 59 CE 01"
  ftctl decode 128930364000001000 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

func runDecode(args []string) error {
	ft, err := parseInput(args[0], decodeBytes)
	if err != nil {
		return err
	}
	printVerbose("Decoding tick count: %d\n", ft.Ticks())
	return printReport(buildReport(ft))
}

// parseInput accepts a decimal tick count, a 0x-prefixed hex tick count, or
// (when asBytes is set) the 8 raw bytes as hex with optional spaces.
func parseInput(arg string, asBytes bool) (filetime.FileTime, error) {
	if asBytes {
		raw, err := hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
		if err != nil {
			return filetime.FileTime{}, fmt.Errorf("invalid hex bytes %q: %w", arg, err)
		}
		ft, err := filetime.FromBytes(raw)
		if err != nil {
			return filetime.FileTime{}, err
		}
		return ft, nil
	}
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		v, err := strconv.ParseUint(arg[2:], 16, 64)
		if err != nil {
			return filetime.FileTime{}, fmt.Errorf("invalid hex tick count %q: %w", arg, err)
		}
		return filetime.FromInt64(int64(v)), nil
	}
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return filetime.FileTime{}, fmt.Errorf(
			"invalid tick count %q (use --bytes for raw hex bytes): %w", arg, err)
	}
	return filetime.FromInt64(v), nil
}

// report is the JSON shape shared by decode, encode, and now.
type report struct {
	Instant     string `json:"instant,omitempty"`
	Ticks       int64  `json:"ticks"`
	Seconds     int64  `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
	BytesLE     string `json:"bytesLE"`
}

func buildReport(ft filetime.FileTime) report {
	r := report{
		Ticks:       ft.Ticks(),
		Seconds:     ft.Seconds(),
		Nanoseconds: ft.Nanoseconds(),
		BytesLE:     fmt.Sprintf("% x", ft.Bytes()),
	}
	// Out-of-range ticks keep their raw fields; only the instant is absent.
	if tm, err := ft.Time(); err == nil {
		r.Instant = tm.Format(time.RFC3339Nano)
	}
	return r
}

func printReport(r report) error {
	if jsonOut {
		return printJSON(r)
	}
	if r.Instant != "" {
		printInfo("Instant:      %s\n", r.Instant)
	} else {
		printInfo("Instant:      (outside calendar range)\n")
	}
	printInfo("Ticks:        %d\n", r.Ticks)
	printInfo("Seconds:      %d\n", r.Seconds)
	printInfo("Nanoseconds:  %d\n", r.Nanoseconds)
	printInfo("Bytes (LE):   %s\n", r.BytesLE)
	return nil
}
