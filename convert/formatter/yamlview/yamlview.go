/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package yamlview provides YAML formatting for resolved rules.
package yamlview

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Formatter outputs the resolved view as YAML, keyed by rule id.
type Formatter struct {
	Serialize func(rules []*rule.Rule) any
}

// New creates a new YAML formatter with the given serialization function.
func New(serialize func(rules []*rule.Rule) any) *Formatter {
	return &Formatter{Serialize: serialize}
}

// Format converts rules to YAML with two-space indentation.
func (f *Formatter) Format(rules []*rule.Rule, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(formatter.FormatHeader(opts.Header, formatter.HashComments))

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.Serialize(rules)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
