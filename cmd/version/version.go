/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for spectra-rules.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/4hrue2kd83f/spectra-lexer/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for spectra-rules.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	return printVersion(cmd.OutOrStdout(), format)
}

func printVersion(w io.Writer, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(version.Info(), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "text":
		_, err := fmt.Fprintf(w, "spectra-rules %s\n", version.Full())
		return err
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}
