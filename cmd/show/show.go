/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package show provides the show command for spectra-rules.
package show

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/4hrue2kd83f/spectra-lexer/cmd/cmdutil"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/render"
	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Cmd is the show cobra command.
var Cmd = &cobra.Command{
	Use:   "show ID [files...]",
	Short: "Show one rule and the rules it is built from",
	Long: `Show a rule's caption, where it was defined, its flags, and a map of the
rules its letters are built from.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	id, files := args[0], args[1:]

	result, err := cmdutil.LoadRules(cmd.Context(), fs.NewOSFileSystem(), files)
	if err != nil {
		if cmdutil.PrintDiagnostics(cmd.ErrOrStderr(), err) {
			return fmt.Errorf("failed to load rules")
		}
		return err
	}

	return show(cmd.OutOrStdout(), result.Set, id)
}

func show(w io.Writer, set *rule.Set, id string) error {
	r, ok := set.Get(id)
	if !ok {
		return fmt.Errorf("no rule %q", id)
	}

	if err := render.RuleMap(w, set, r); err != nil {
		return err
	}
	if r.FilePath != "" {
		fmt.Fprintf(w, "\ndefined at %s:%d:%d\n", r.FilePath, r.Line+1, r.Column+1)
	}
	if r.Pattern.HasAlt {
		fmt.Fprintf(w, "alt: %s\n", r.Pattern.Alt)
	}
	if r.Flags.Len() > 0 {
		fmt.Fprintln(w, "flags:")
		return render.FlagLegend(w, r.Flags)
	}
	return nil
}
