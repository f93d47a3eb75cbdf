/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"testing"

	"github.com/4hrue2kd83f/spectra-lexer/convert/formatter"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

func TestFormatHeader_Empty(t *testing.T) {
	if result := formatter.FormatHeader("", formatter.HashComments); result != "" {
		t.Errorf("expected empty string for empty header, got %q", result)
	}
}

func TestFormatHeader_MultiLine(t *testing.T) {
	result := formatter.FormatHeader("Generated rules\n\nDo not edit\n\n", formatter.HashComments)
	expected := "# Generated rules\n#\n# Do not edit\n\n"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestSortRules(t *testing.T) {
	rules := []*rule.Rule{{ID: "b"}, {ID: "-t"}, {ID: "A"}}

	sorted := formatter.SortRules(rules)

	if sorted[0].ID != "-t" || sorted[1].ID != "A" || sorted[2].ID != "b" {
		t.Errorf("unexpected order: %s %s %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	if rules[0].ID != "b" {
		t.Error("input must not be reordered")
	}
}

func TestQuoteJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"cat", `"cat"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a<b>&c", `"a<b>&c"`},
		{`back\slash`, `"back\\slash"`},
		{"→", `"→"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatter.QuoteJSON(tt.input); got != tt.expected {
				t.Errorf("QuoteJSON(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}
