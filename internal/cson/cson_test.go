/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cson_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/4hrue2kd83f/spectra-lexer/internal/cson"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "hash comments",
			input: "# header\n{\n  # a rule\n  \"a\": [\"A\", \"a\"]\n}\n",
		},
		{
			name:  "slash comments",
			input: "// header\n{\n  \"a\": [\"A\", \"a\"] // trailing\n}\n",
		},
		{
			name:  "crlf with indented hash",
			input: "{\r\n\t# note\r\n\t\"a\": [\"A\", \"a\"]\r\n}\r\n",
		},
		{
			name:  "byte order mark",
			input: "\uFEFF{\n  \"a\": [\"A\", \"a\"]\n}\n",
		},
		{
			name:  "trailing comma",
			input: "{\n  \"a\": [\"A\", \"a\"],\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := cson.ToJSON([]byte(tt.input))
			var got map[string][]string
			if err := json.Unmarshal(out, &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if len(got["a"]) != 2 || got["a"][1] != "a" {
				t.Errorf("unexpected rule body %v", got["a"])
			}
			if strings.Count(string(out), "\n") != strings.Count(tt.input, "\n") {
				t.Errorf("line count changed:\n%q\n%q", tt.input, out)
			}
		})
	}
}

func TestToJSON_HashInsideString(t *testing.T) {
	input := "{\n  \"#\": [\"#\", \"#\"]\n}\n"
	var got map[string][]string
	if err := json.Unmarshal(cson.ToJSON([]byte(input)), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["#"][0] != "#" {
		t.Errorf("expected number key rule to survive, got %v", got)
	}
}
