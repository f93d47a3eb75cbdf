/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides rule serialization.
package convert

import (
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Options configures rule serialization behavior.
type Options struct {
	// Format specifies the output format (default FormatCSON).
	Format Format

	// Header is written as a leading comment where the format allows one.
	Header string

	// SkipReferenceRules leaves out REF rules.
	SkipReferenceRules bool

	// OmitChildren leaves connections out of the resolved view.
	OmitChildren bool
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format: FormatCSON,
	}
}

// Entry is the resolved view of one rule.
type Entry struct {
	Keys     string            `json:"keys" yaml:"keys"`
	Letters  string            `json:"letters" yaml:"letters"`
	Alt      string            `json:"alt,omitempty" yaml:"alt,omitempty"`
	Flags    []string          `json:"flags,omitempty" yaml:"flags,omitempty"`
	Info     string            `json:"info,omitempty" yaml:"info,omitempty"`
	Children []rule.Connection `json:"children,omitempty" yaml:"children,omitempty"`
}

// Serialize converts resolved rules to their resolved view, keyed by id.
// Alt is only set when the rule's pattern has an explicit alternate.
func Serialize(rules []*rule.Rule, opts Options) map[string]Entry {
	result := make(map[string]Entry, len(rules))
	for _, r := range rules {
		e := Entry{
			Keys:    r.Keys.String(),
			Letters: r.Letters,
			Flags:   r.Flags.Strings(),
			Info:    r.Info,
		}
		if r.Pattern.HasAlt {
			e.Alt = r.Pattern.Alt
		}
		if !opts.OmitChildren {
			e.Children = r.Connections
		}
		result[r.ID] = e
	}
	return result
}

// filter applies rule selection options.
func filter(rules []*rule.Rule, opts Options) []*rule.Rule {
	if !opts.SkipReferenceRules {
		return rules
	}
	kept := make([]*rule.Rule, 0, len(rules))
	for _, r := range rules {
		if !r.Flags.Has(rule.Ref) {
			kept = append(kept, r)
		}
	}
	return kept
}
