/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for spectra-rules.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/4hrue2kd83f/spectra-lexer/cmd/cmdutil"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/convert"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/list"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/show"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/validate"
	"github.com/4hrue2kd83f/spectra-lexer/cmd/version"
	"github.com/4hrue2kd83f/spectra-lexer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "spectra-rules",
	Short: "Parse and check steno rule files",
	Long: `spectra-rules parses steno rule files, resolves the references between rules,
and reports every problem it finds with its file position.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(viper.GetBool(cmdutil.KeyVerbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(cmdutil.KeyConfig, "c", "", "Config file (default: .config/spectra-rules.{yaml,yml,json})")
	flags.Bool(cmdutil.KeyTypeDirected, false, "Accept an info string in place of the flags array")
	flags.Bool(cmdutil.KeyParallel, false, "Parse and resolve rules concurrently")
	flags.BoolP(cmdutil.KeyVerbose, "v", false, "Log debug output")

	for _, key := range []string{cmdutil.KeyConfig, cmdutil.KeyTypeDirected, cmdutil.KeyParallel, cmdutil.KeyVerbose} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("SPECTRA_RULES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(show.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
