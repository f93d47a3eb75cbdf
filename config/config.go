/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for steno rule tooling.
package config

import (
	"encoding/json"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/4hrue2kd83f/spectra-lexer/parser"
)

// Config represents the rule tooling configuration.
type Config struct {
	// Files specifies rule files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// KeyAlphabet replaces the default set of characters allowed in keys.
	KeyAlphabet string `yaml:"keyAlphabet" json:"keyAlphabet"`

	// TypeDirectedFields lets a rule body carry info without a flags array.
	TypeDirectedFields bool `yaml:"typeDirectedFields" json:"typeDirectedFields"`

	// Parallel parses and resolves rules concurrently.
	Parallel bool `yaml:"parallel" json:"parallel"`
}

// FileSpec represents a rule file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// TypeDirectedFields overrides the global setting for this file.
	TypeDirectedFields *bool `yaml:"typeDirectedFields" json:"typeDirectedFields"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config.
// Relative spec paths are taken from rootDir; globbed specs match every file they expand to.
func (c *Config) OptionsForFile(rootDir, path string) parser.Options {
	opts := parser.Options{
		KeyAlphabet:        c.KeyAlphabet,
		TypeDirectedFields: c.TypeDirectedFields,
		Parallel:           c.Parallel,
		FilePath:           path,
	}

	for _, spec := range c.Files {
		if spec.TypeDirectedFields == nil {
			continue
		}
		specPath := spec.Path
		if !filepath.IsAbs(specPath) {
			specPath = filepath.Join(rootDir, specPath)
		}
		if specPath == path || (containsGlob(specPath) && matchDoublestar(specPath, path)) {
			opts.TypeDirectedFields = *spec.TypeDirectedFields
			break
		}
	}

	return opts
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
