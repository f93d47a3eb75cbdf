/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for spectra-rules.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/4hrue2kd83f/spectra-lexer/cmd/cmdutil"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/render"
	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List rules from steno rule files",
	Long:  `List resolved rules, sorted by id, with optional filtering and formatting.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringSlice("flag", nil, "Only rules with all of these flags (REF, STRK, WORD, RARE, INV, LINK)")
	Cmd.Flags().Bool("matchable", false, "Leave out REF rules")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	flagNames, _ := cmd.Flags().GetStringSlice("flag")
	matchable, _ := cmd.Flags().GetBool("matchable")
	format, _ := cmd.Flags().GetString("format")

	var required rule.FlagSet
	for _, name := range flagNames {
		f, err := rule.ParseFlag(name)
		if err != nil {
			return err
		}
		required = required.With(f)
	}

	result, err := cmdutil.LoadRules(cmd.Context(), fs.NewOSFileSystem(), args)
	if err != nil {
		if cmdutil.PrintDiagnostics(cmd.ErrOrStderr(), err) {
			return fmt.Errorf("failed to load rules")
		}
		return err
	}

	rows := render.ComputeRows(filterRules(result.Set.Rules(), required, matchable))

	switch format {
	case "json":
		return render.JSON(cmd.OutOrStdout(), rows)
	case "table":
		return render.Table(cmd.OutOrStdout(), rows)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}
}

// filterRules keeps rules carrying every required flag, and drops REF rules when matchable is set.
func filterRules(rules []*rule.Rule, required rule.FlagSet, matchable bool) []*rule.Rule {
	filtered := make([]*rule.Rule, 0, len(rules))
	for _, r := range rules {
		if matchable && r.MatchMode() == rule.MatchNone {
			continue
		}
		if r.Flags&required != required {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
