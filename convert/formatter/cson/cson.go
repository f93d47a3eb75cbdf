/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cson writes rules back out in rule file form.
package cson

import (
	"strings"

	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter"
	"github.com/4hrue2kd83f/spectra-lexer/parser"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Formatter outputs a rule file that parses back to the same rules.
// Ids are sorted. Flags are written when present or when info needs a position.
type Formatter struct{}

// New creates a new rule file formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts rules to rule file text.
func (f *Formatter) Format(rules []*rule.Rule, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.HashComments))
	sb.WriteString("{\n")

	sorted := formatter.SortRules(rules)
	for i, r := range sorted {
		sb.WriteString("    ")
		sb.WriteString(formatter.QuoteJSON(r.ID))
		sb.WriteString(": ")
		sb.WriteString(body(r))
		if i < len(sorted)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

// body renders [keys, pattern, flags?, info?].
func body(r *rule.Rule) string {
	fields := []string{
		formatter.QuoteJSON(r.Keys.String()),
		formatter.QuoteJSON(parser.FormatPattern(r.Pattern)),
	}

	if r.Flags.Len() > 0 || r.Info != "" {
		names := r.Flags.Strings()
		quoted := make([]string, len(names))
		for i, name := range names {
			quoted[i] = formatter.QuoteJSON(name)
		}
		fields = append(fields, "["+strings.Join(quoted, ", ")+"]")
	}
	if r.Info != "" {
		fields = append(fields, formatter.QuoteJSON(r.Info))
	}

	return "[" + strings.Join(fields, ", ") + "]"
}
