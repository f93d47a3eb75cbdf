/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmdutil holds the rule loading shared by CLI commands.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/4hrue2kd83f/spectra-lexer/config"
	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/load"
	"github.com/4hrue2kd83f/spectra-lexer/validator"
)

// Viper keys for the persistent flags.
const (
	KeyConfig       = "config"
	KeyTypeDirected = "type-directed"
	KeyParallel     = "parallel"
	KeyVerbose      = "verbose"
)

// LoadRules loads rules from files, or from the config's file list when none are given.
// Settings come from viper, so flags, SPECTRA_RULES_* env vars and config all apply.
func LoadRules(ctx context.Context, filesystem fs.FileSystem, files []string) (*load.Result, error) {
	opts := load.Options{
		FS:                 filesystem,
		TypeDirectedFields: viper.GetBool(KeyTypeDirected),
		Parallel:           viper.GetBool(KeyParallel),
	}

	if path := viper.GetString(KeyConfig); path != "" {
		cfg, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		opts.Config = cfg
	}

	return load.Load(ctx, files, opts)
}

// PrintDiagnostics writes each diagnostic in err on its own line.
// Returns false if err holds no diagnostics.
func PrintDiagnostics(w io.Writer, err error) bool {
	var diags validator.Diagnostics
	if !errors.As(err, &diags) {
		return false
	}
	for _, d := range diags {
		fmt.Fprintln(w, d.Error())
	}
	return true
}
