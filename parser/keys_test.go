/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"github.com/4hrue2kd83f/spectra-lexer/parser"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		strokes int
		text    string
	}{
		{name: "single stroke", input: "SH", strokes: 1, text: "SH"},
		{name: "bank split", input: "KP-T", strokes: 1, text: "KP-T"},
		{name: "right bank only", input: "-T", strokes: 1, text: "-T"},
		{name: "left bank marker", input: "S-", strokes: 1, text: "S-"},
		{name: "multi stroke", input: "KAT/-S", strokes: 2, text: "KAT/-S"},
		{name: "asterisk and number key", input: "#*/1-9", strokes: 2, text: "#*/1-9"},
		{name: "several hyphens", input: "S-T-K", strokes: 1, text: "S-T-K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, errs := parser.ParseKeys(tt.input, "")
			if len(errs) > 0 {
				t.Fatalf("ParseKeys(%q) errors = %v", tt.input, errs)
			}
			if len(seq) != tt.strokes {
				t.Errorf("expected %d strokes, got %d", tt.strokes, len(seq))
			}
			if got := seq.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestParseKeys_Tokens(t *testing.T) {
	seq, errs := parser.ParseKeys("KP-T", "")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	tokens := seq[0].Tokens
	if len(tokens) != 2 || tokens[0] != "KP" || tokens[1] != "T" {
		t.Errorf("expected tokens [KP T], got %v", tokens)
	}
}

func TestParseKeys_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errors int
	}{
		{name: "empty", input: "", errors: 1},
		{name: "double slash", input: "S//T", errors: 1},
		{name: "leading slash", input: "/S", errors: 1},
		{name: "trailing slash", input: "S/", errors: 1},
		{name: "double hyphen", input: "S--T", errors: 1},
		{name: "lone hyphen", input: "-", errors: 1},
		{name: "lowercase", input: "sh", errors: 2},
		{name: "split both sides", input: "-S-", errors: 1},
		{name: "every stroke reported", input: "x/Q", errors: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, errs := parser.ParseKeys(tt.input, "")
			if seq != nil {
				t.Errorf("expected no sequence, got %v", seq)
			}
			if len(errs) != tt.errors {
				t.Fatalf("expected %d errors, got %d: %v", tt.errors, len(errs), errs)
			}
			for _, err := range errs {
				if !errors.Is(err, rule.ErrMalformedKeySequence) {
					t.Errorf("expected ErrMalformedKeySequence, got %v", err)
				}
			}
		})
	}
}

func TestParseKeys_CustomAlphabet(t *testing.T) {
	if _, errs := parser.ParseKeys("XY", "XY"); len(errs) > 0 {
		t.Errorf("expected custom alphabet to accept XY, got %v", errs)
	}
	if _, errs := parser.ParseKeys("S", "XY"); len(errs) != 1 {
		t.Errorf("expected custom alphabet to reject S, got %v", errs)
	}
}
