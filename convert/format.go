/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter"
	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter/cson"
	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter/jsonview"
	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter/yamlview"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Format represents an output format for rule serialization.
type Format string

const (
	// FormatCSON outputs a rule file (default).
	FormatCSON Format = "cson"

	// FormatJSON outputs the resolved view as JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs the resolved view as YAML.
	FormatYAML Format = "yaml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSON),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "cson", "rules", "":
		return FormatCSON, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatRules converts rules to the specified output format.
func FormatRules(rules []*rule.Rule, format Format, opts Options) ([]byte, error) {
	serialize := func(rs []*rule.Rule) any {
		return Serialize(rs, opts)
	}

	var f formatter.Formatter
	switch format {
	case FormatCSON:
		f = cson.New()
	case FormatJSON:
		f = jsonview.New(serialize)
	case FormatYAML:
		f = yamlview.New(serialize)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(filter(rules, opts), formatter.Options{Header: opts.Header})
}

// FormatSet converts every rule of a set to the specified output format.
func FormatSet(set *rule.Set, format Format, opts Options) ([]byte, error) {
	return FormatRules(set.Rules(), format, opts)
}
