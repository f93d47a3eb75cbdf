/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rule provides the steno rule model shared by the parser, resolver and encoders.
package rule

import "fmt"

// Connection places a referenced rule inside its parent's letters.
type Connection struct {
	// Target is the id of the referenced rule.
	Target string `json:"rule" yaml:"rule"`

	// Start is the character offset in the parent's letters where the child begins.
	Start int `json:"start" yaml:"start"`

	// Length is the number of characters of the parent's letters the child spans. May be 0.
	Length int `json:"length" yaml:"length"`
}

// MatchMode tells a lexer how a rule may be matched.
type MatchMode int

const (
	// MatchPrefix rules are matched anywhere by key prefix. This is the default.
	MatchPrefix MatchMode = iota

	// MatchStroke rules only match a complete stroke.
	MatchStroke

	// MatchWord rules only match a complete word.
	MatchWord

	// MatchNone rules are used only by reference and never matched directly.
	MatchNone
)

// String returns the match mode name.
func (m MatchMode) String() string {
	switch m {
	case MatchPrefix:
		return "prefix"
	case MatchStroke:
		return "stroke"
	case MatchWord:
		return "word"
	case MatchNone:
		return "none"
	default:
		return "unknown"
	}
}

// Rule maps a steno key sequence to English letters.
type Rule struct {
	// ID is the rule's identifier within the rule file. Never shown to end users.
	ID string

	// Keys is the parsed key sequence.
	Keys KeySequence

	// Pattern is the parsed letters pattern, before resolution.
	Pattern Pattern

	// Flags holds the rule's flags.
	Flags FlagSet

	// Info is optional descriptive text.
	Info string

	// Letters is the fully expanded letter sequence. Set by the resolver.
	Letters string

	// Resolved indicates Letters and Connections have been computed.
	Resolved bool

	// Connections lists every referenced rule and its span in Letters, in pattern order.
	Connections []Connection

	// FilePath is the file this rule was loaded from.
	FilePath string

	// Line is the 0-based line number where this rule is defined.
	Line uint32

	// Column is the 0-based character offset where this rule is defined.
	Column uint32
}

// MatchMode derives how a lexer may match the rule from its flags.
func (r *Rule) MatchMode() MatchMode {
	switch {
	case r.Flags.Has(Ref):
		return MatchNone
	case r.Flags.Has(Strk):
		return MatchStroke
	case r.Flags.Has(Word):
		return MatchWord
	default:
		return MatchPrefix
	}
}

// IsCompound reports whether the rule is built from other rules.
func (r *Rule) IsCompound() bool {
	return len(r.Connections) > 0
}

// Alt returns the diagram display text, falling back to the resolved letters.
func (r *Rule) Alt() string {
	if r.Pattern.HasAlt {
		return r.Pattern.Alt
	}
	return r.Letters
}

// Caption returns the text shown when the rule is displayed.
// Compound rules include the full keys to letters mapping.
func (r *Rule) Caption() string {
	keys := r.Keys.String()
	if r.IsCompound() && r.Letters != "" {
		if r.Info == "" {
			return fmt.Sprintf("%s → %s", keys, r.Letters)
		}
		return fmt.Sprintf("%s → %s: %s", keys, r.Letters, r.Info)
	}
	if r.Info == "" {
		return keys
	}
	return fmt.Sprintf("%s: %s", keys, r.Info)
}

// String returns the keys to letters mapping.
func (r *Rule) String() string {
	return fmt.Sprintf("%s → %s", r.Keys, r.Letters)
}
