/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for spectra-rules.
package convert

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/4hrue2kd83f/spectra-lexer/cmd/cmdutil"
	convertlib "github.com/4hrue2kd83f/spectra-lexer/convert"
	"github.com/4hrue2kd83f/spectra-lexer/fs"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert and combine rule files",
	Long: `Load steno rule files, resolve them, and write the combined rules in another form.

Output Formats:
  cson   Rule file form, ids sorted (default)
  json   Resolved view: keys, letters, alt, flags, info and children per rule
  yaml   Resolved view as YAML

Examples:
  # Merge several rule files into one
  spectra-rules convert -o all.cson rules/*.cson

  # Export resolved letters for another tool
  spectra-rules convert --format json --skip-ref -o rules.json rules/*.cson`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "cson", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().String("header", "", "Comment written at the top of cson and yaml output")
	Cmd.Flags().Bool("skip-ref", false, "Leave out REF rules")
	Cmd.Flags().Bool("omit-children", false, "Leave connections out of json and yaml output")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	header, _ := cmd.Flags().GetString("header")
	skipRef, _ := cmd.Flags().GetBool("skip-ref")
	omitChildren, _ := cmd.Flags().GetBool("omit-children")

	format, err := convertlib.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	result, err := cmdutil.LoadRules(cmd.Context(), filesystem, args)
	if err != nil {
		if cmdutil.PrintDiagnostics(cmd.ErrOrStderr(), err) {
			return fmt.Errorf("failed to load rules")
		}
		return err
	}

	outputBytes, err := convertlib.FormatSet(result.Set, format, convertlib.Options{
		Format:             format,
		Header:             header,
		SkipReferenceRules: skipRef,
		OmitChildren:       omitChildren,
	})
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if output != "" {
		if err := filesystem.WriteFile(output, outputBytes, 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", output, err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(outputBytes)
	return err
}
