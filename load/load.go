/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading steno rule files.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/4hrue2kd83f/spectra-lexer/config"
	"github.com/4hrue2kd83f/spectra-lexer/fs"
	"github.com/4hrue2kd83f/spectra-lexer/internal/logger"
	"github.com/4hrue2kd83f/spectra-lexer/parser"
	"github.com/4hrue2kd83f/spectra-lexer/resolver"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
	"github.com/4hrue2kd83f/spectra-lexer/validator"
)

// ErrNoFiles indicates that no rule files were given and the config lists none.
var ErrNoFiles = errors.New("no rule files to load")

// Options configures how rules are loaded.
type Options struct {
	// Root is the directory for config lookup and relative file paths.
	// Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Config replaces the config file found under Root.
	Config *config.Config

	// KeyAlphabet overrides the config and the parser default when not empty.
	KeyAlphabet string

	// TypeDirectedFields enables type-directed optional fields for every file.
	TypeDirectedFields bool

	// Parallel parses and resolves concurrently.
	Parallel bool
}

// Result is a loaded rule set with its non-fatal findings.
type Result struct {
	// Set holds every resolved rule.
	Set *rule.Set

	// Files lists the files that were read, in load order.
	Files []string

	// Warnings are lint findings. They never prevent loading.
	Warnings validator.Diagnostics
}

// Load loads, resolves and assembles rules from one or more files.
//
// When files is empty, the files listed in the config are used
// (paths or doublestar globs, relative to Root).
//
// The loading process:
//  1. Loads config from .config/spectra-rules.{yaml,yml,json} unless Options.Config is set
//  2. Parses every file, collecting all per-rule diagnostics
//  3. Checks for ids defined in more than one file
//  4. Stops with validator.Diagnostics if anything was reported
//  5. Resolves references
//  6. Assembles the rule.Set and lints it
func Load(ctx context.Context, files []string, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.LoadOrDefault(filesystem, root)
	}

	paths, err := resolvePaths(files, cfg, filesystem, root)
	if err != nil {
		return nil, err
	}

	p := parser.NewRuleFileParser()
	var (
		all   []*rule.Rule
		diags validator.Diagnostics
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rules, err := p.ParseFile(filesystem, path, opts.apply(cfg.OptionsForFile(root, path)))
		if err != nil {
			var fileDiags validator.Diagnostics
			if !errors.As(err, &fileDiags) {
				return nil, err
			}
			diags = append(diags, fileDiags...)
			continue
		}
		logger.Debug("parsed %d rules from %s", len(rules), path)
		all = append(all, rules...)
	}

	all, dupes := dropDuplicates(all)
	diags = append(diags, dupes...)
	if len(diags) > 0 {
		diags.Sort()
		return nil, diags
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := assemble(all, opts.Parallel || cfg.Parallel)
	if err != nil {
		return nil, err
	}
	result.Files = paths
	return result, nil
}

// Parse parses, resolves and assembles rules from a single in-memory buffer.
// Config files are not consulted.
func Parse(data []byte, opts Options) (*Result, error) {
	rules, err := parser.NewRuleFileParser().Parse(data, opts.apply(parser.Options{}))
	if err != nil {
		return nil, err
	}
	return assemble(rules, opts.Parallel)
}

// apply layers explicit options over parser options taken from config.
func (o Options) apply(popts parser.Options) parser.Options {
	if o.KeyAlphabet != "" {
		popts.KeyAlphabet = o.KeyAlphabet
	}
	if o.TypeDirectedFields {
		popts.TypeDirectedFields = true
	}
	if o.Parallel {
		popts.Parallel = true
	}
	return popts
}

// resolvePaths makes explicit files absolute, or expands the config's file list.
func resolvePaths(files []string, cfg *config.Config, filesystem fs.FileSystem, root string) ([]string, error) {
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, root)
		if err != nil {
			return nil, fmt.Errorf("failed to expand config files: %w", err)
		}
		if len(expanded) == 0 {
			return nil, ErrNoFiles
		}
		return expanded, nil
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(root, f)
		}
		paths = append(paths, f)
	}
	return paths, nil
}

// dropDuplicates reports ids defined in more than one file.
// The first definition in load order is kept.
func dropDuplicates(rules []*rule.Rule) ([]*rule.Rule, validator.Diagnostics) {
	var diags validator.Diagnostics
	first := make(map[string]*rule.Rule, len(rules))
	kept := rules[:0:0]

	for _, r := range rules {
		prev, ok := first[r.ID]
		if !ok {
			first[r.ID] = r
			kept = append(kept, r)
			continue
		}
		diags = append(diags, validator.Diagnostic{
			FilePath: r.FilePath,
			RuleID:   r.ID,
			Line:     int(r.Line) + 1,
			Column:   int(r.Column) + 1,
			Kind:     rule.ErrDuplicateID,
			Message:  fmt.Sprintf("already defined at %s:%d", prev.FilePath, prev.Line+1),
		})
	}

	return kept, diags
}

// assemble resolves parsed rules and freezes them into a Set.
func assemble(rules []*rule.Rule, parallel bool) (*Result, error) {
	if err := resolver.Resolve(rules, resolver.Options{Parallel: parallel}); err != nil {
		return nil, err
	}

	set, err := rule.NewSet(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble rules: %w", err)
	}

	warnings := validator.Lint(set)
	for _, w := range warnings {
		logger.Debug("%v", w)
	}

	return &Result{Set: set, Warnings: warnings}, nil
}
