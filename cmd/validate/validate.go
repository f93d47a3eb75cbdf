/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for spectra-rules.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/4hrue2kd83f/spectra-lexer/cmd/cmdutil"
	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/load"
)

// ErrValidationFailed is returned after diagnostics have been printed.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate steno rule files",
	Long: `Parse, resolve and lint steno rule files, reporting every problem found.

With no files, the files listed in .config/spectra-rules.yaml are validated.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	result, err := cmdutil.LoadRules(cmd.Context(), fs.NewOSFileSystem(), args)
	return report(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, err, strict, quiet)
}

// report prints the outcome of a load and decides the command's result.
func report(out, errOut io.Writer, result *load.Result, err error, strict, quiet bool) error {
	if err != nil {
		if cmdutil.PrintDiagnostics(errOut, err) {
			return ErrValidationFailed
		}
		return err
	}

	if !quiet || strict {
		for _, w := range result.Warnings {
			fmt.Fprintln(errOut, w.Error())
		}
	}

	if strict && len(result.Warnings) > 0 {
		return fmt.Errorf("%w: %d warnings", ErrValidationFailed, len(result.Warnings))
	}

	if !quiet {
		fmt.Fprintf(out, "%d rules in %d files, %d warnings.\n", result.Set.Len(), len(result.Files), len(result.Warnings))
	}
	return nil
}
