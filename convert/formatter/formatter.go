/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for rule formatters.
package formatter

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts rules to the target format.
	Format(rules []*rule.Rule, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Header is written as a comment at the top of formats that allow comments.
	Header string
}

// CommentStyle describes how a format writes line comments.
type CommentStyle struct {
	LinePrefix string
}

// HashComments are the comments of rule files and YAML.
var HashComments = CommentStyle{LinePrefix: "# "}

// FormatHeader renders header text as comment lines followed by a blank line.
// Returns "" for an empty header.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}

	var sb strings.Builder
	for line := range strings.SplitSeq(header, "\n") {
		sb.WriteString(strings.TrimRight(style.LinePrefix+line, " "))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// SortRules returns a copy of rules sorted by id.
func SortRules(rules []*rule.Rule) []*rule.Rule {
	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b *rule.Rule) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// QuoteJSON encodes s as a JSON string without escaping HTML characters.
func QuoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
