/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package jsonview provides JSON formatting for resolved rules.
package jsonview

import (
	"bytes"
	"encoding/json"

	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Formatter outputs the resolved view as JSON, keyed by rule id.
type Formatter struct {
	// Serialize builds the resolved view. Keys of the result are written in sorted order.
	Serialize func(rules []*rule.Rule) any
}

// New creates a new JSON formatter with the given serialization function.
func New(serialize func(rules []*rule.Rule) any) *Formatter {
	return &Formatter{Serialize: serialize}
}

// Format converts rules to indented JSON. Headers are ignored; JSON has no comments.
func (f *Formatter) Format(rules []*rule.Rule, _ formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f.Serialize(rules)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
