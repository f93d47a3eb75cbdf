/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4hrue2kd83f/spectra-lexer/parser"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

func TestParsePattern(t *testing.T) {
	lit := func(text string, offset int) rule.Segment {
		return rule.Segment{Kind: rule.Literal, Text: text, Offset: offset}
	}
	ref := func(target string, offset int) rule.Segment {
		return rule.Segment{Kind: rule.Reference, Target: target, Offset: offset}
	}
	alias := func(text, target string, offset int) rule.Segment {
		return rule.Segment{Kind: rule.AliasedReference, Text: text, Target: target, Offset: offset}
	}

	tests := []struct {
		name     string
		input    string
		expected rule.Pattern
	}{
		{
			name:     "empty",
			input:    "",
			expected: rule.Pattern{},
		},
		{
			name:     "literal only",
			input:    "sh",
			expected: rule.Pattern{Segments: []rule.Segment{lit("sh", 0)}},
		},
		{
			name:     "reference then literal",
			input:    "(t)re",
			expected: rule.Pattern{Segments: []rule.Segment{ref("t", 0), lit("re", 3)}},
		},
		{
			name:     "aliased reference",
			input:    "(not|not)",
			expected: rule.Pattern{Segments: []rule.Segment{alias("not", "not", 0)}},
		},
		{
			name:     "alias and reference",
			input:    "(q.)(u|w.)",
			expected: rule.Pattern{Segments: []rule.Segment{ref("q.", 0), alias("u", "w.", 4)}},
		},
		{
			name:  "alt text",
			input: "(c)(a)(t)|cat-",
			expected: rule.Pattern{
				Segments: []rule.Segment{ref("c", 0), ref("a", 3), ref("t", 6)},
				Alt:      "cat-",
				HasAlt:   true,
			},
		},
		{
			name:  "alt on plain letters",
			input: "can't|cannot",
			expected: rule.Pattern{
				Segments: []rule.Segment{lit("can't", 0)},
				Alt:      "cannot",
				HasAlt:   true,
			},
		},
		{
			name:     "empty alt",
			input:    "x|",
			expected: rule.Pattern{Segments: []rule.Segment{lit("x", 0)}, HasAlt: true},
		},
		{
			name:     "escaped syntax in literal",
			input:    `a\(b\)\|c\\`,
			expected: rule.Pattern{Segments: []rule.Segment{lit(`a(b)|c\`, 0)}},
		},
		{
			name:     "lone backslash is literal",
			input:    `a\b`,
			expected: rule.Pattern{Segments: []rule.Segment{lit(`a\b`, 0)}},
		},
		{
			name:     "empty alias text",
			input:    "(|x)",
			expected: rule.Pattern{Segments: []rule.Segment{alias("", "x", 0)}},
		},
		{
			name:     "opaque id with punctuation",
			input:    "(-xx)(X:yy~)",
			expected: rule.Pattern{Segments: []rule.Segment{ref("-xx", 0), ref("X:yy~", 5)}},
		},
		{
			name:     "multibyte literal",
			input:    "é(x)ü",
			expected: rule.Pattern{Segments: []rule.Segment{lit("é", 0), ref("x", 2), lit("ü", 5)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParsePattern(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePattern_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   error
		offset int
	}{
		{name: "nested reference", input: "(a(b))", kind: rule.ErrNestedReference, offset: 2},
		{name: "nested inside alias", input: "x(a|(b))", kind: rule.ErrNestedReference, offset: 4},
		{name: "unterminated", input: "ab(cd", kind: rule.ErrUnterminatedReference, offset: 2},
		{name: "stray close", input: "ab)", kind: rule.ErrUnterminatedReference, offset: 2},
		{name: "empty reference", input: "a()", kind: rule.ErrEmptyReference, offset: 1},
		{name: "empty alias target", input: "(a|)", kind: rule.ErrEmptyReference, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParsePattern(tt.input)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("ParsePattern(%q) error = %v, want %v", tt.input, err, tt.kind)
			}
			var se *parser.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *parser.SyntaxError, got %T", err)
			}
			if se.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", se.Offset, tt.offset)
			}
		})
	}
}

func TestFormatPattern_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"sh",
		"(t)re",
		"(q.)(u|w.)",
		"(c)(a)(t)|cat-",
		`a\(b\)\|c\\`,
		"can't|cannot",
		"(|x)",
	}

	for _, input := range inputs {
		first, err := parser.ParsePattern(input)
		require.NoError(t, err, input)

		second, err := parser.ParsePattern(parser.FormatPattern(first))
		require.NoError(t, err, input)

		assert.Equal(t, first, second, input)
	}
}
