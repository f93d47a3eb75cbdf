/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

// Pattern syntax characters.
const (
	refOpen   = '('
	refClose  = ')'
	aliasSep  = '|'
	escapeSeq = '\\'
)

// ParsePattern parses a rule's pattern string.
//
// The pattern is literal text with references to other rules:
//
//	(id)       substitute the resolved letters of rule id
//	(text|id)  use text as the letters, recording that it stands for rule id
//
// A '|' outside any reference ends the letters; everything after it is the
// alternate display text, taken verbatim. A backslash escapes any of ( ) | \.
// References may not be nested.
func ParsePattern(s string) (rule.Pattern, error) {
	var (
		p        rule.Pattern
		lit      strings.Builder
		litStart = -1
	)

	flush := func() {
		if lit.Len() > 0 {
			p.Segments = append(p.Segments, rule.Segment{
				Kind:   rule.Literal,
				Text:   lit.String(),
				Offset: litStart,
			})
		}
		lit.Reset()
		litStart = -1
	}

	for i := 0; i < len(s); {
		switch s[i] {
		case refOpen:
			flush()
			seg, next, err := scanReference(s, i)
			if err != nil {
				return rule.Pattern{}, err
			}
			p.Segments = append(p.Segments, seg)
			i = next
		case refClose:
			return rule.Pattern{}, syntaxErrorf(rule.ErrUnterminatedReference, i, "')' has no matching '('")
		case aliasSep:
			flush()
			p.Alt = unescape(s[i+1:])
			p.HasAlt = true
			return p, nil
		default:
			if litStart < 0 {
				litStart = i
			}
			i = appendEscaped(&lit, s, i)
		}
	}

	flush()
	return p, nil
}

// scanReference scans the reference starting at s[open] == '('.
// Returns the segment and the index just past the closing ')'.
func scanReference(s string, open int) (rule.Segment, int, error) {
	var (
		text, target strings.Builder
		aliased      bool
	)
	cur := &target

	for i := open + 1; i < len(s); {
		switch s[i] {
		case refOpen:
			return rule.Segment{}, 0, syntaxErrorf(rule.ErrNestedReference, i, "'(' inside the reference opened at offset %d", open)
		case aliasSep:
			if aliased {
				i = appendEscaped(cur, s, i)
				continue
			}
			aliased = true
			text.WriteString(target.String())
			target.Reset()
			i++
		case refClose:
			seg := rule.Segment{Kind: rule.Reference, Target: target.String(), Offset: open}
			if aliased {
				seg.Kind = rule.AliasedReference
				seg.Text = text.String()
			}
			if seg.Target == "" {
				return rule.Segment{}, 0, syntaxErrorf(rule.ErrEmptyReference, open, "reference %q has no rule id", s[open:i+1])
			}
			return seg, i + 1, nil
		default:
			i = appendEscaped(cur, s, i)
		}
	}

	return rule.Segment{}, 0, syntaxErrorf(rule.ErrUnterminatedReference, open, "'(' is never closed")
}

// appendEscaped writes the character at s[i] to sb, honoring backslash escapes,
// and returns the index of the next unread byte.
func appendEscaped(sb *strings.Builder, s string, i int) int {
	if s[i] == escapeSeq && i+1 < len(s) && isSyntax(s[i+1]) {
		sb.WriteByte(s[i+1])
		return i + 2
	}
	sb.WriteByte(s[i])
	return i + 1
}

func unescape(s string) string {
	if !strings.ContainsRune(s, escapeSeq) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		i = appendEscaped(&sb, s, i)
	}
	return sb.String()
}

func isSyntax(c byte) bool {
	return c == refOpen || c == refClose || c == aliasSep || c == escapeSeq
}

// FormatPattern renders a pattern back to its string form, escaping syntax characters.
func FormatPattern(p rule.Pattern) string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		switch seg.Kind {
		case rule.Literal:
			sb.WriteString(escape(seg.Text))
		case rule.Reference:
			sb.WriteByte(refOpen)
			sb.WriteString(escape(seg.Target))
			sb.WriteByte(refClose)
		case rule.AliasedReference:
			sb.WriteByte(refOpen)
			sb.WriteString(escape(seg.Text))
			sb.WriteByte(aliasSep)
			sb.WriteString(escape(seg.Target))
			sb.WriteByte(refClose)
		}
	}
	if p.HasAlt {
		sb.WriteByte(aliasSep)
		sb.WriteString(escape(p.Alt))
	}
	return sb.String()
}

func escape(s string) string {
	if !strings.ContainsAny(s, `()|\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if isSyntax(s[i]) {
			sb.WriteByte(escapeSeq)
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
