/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cson turns comment-augmented rule files into plain JSON text.
package cson

import (
	"bytes"

	"github.com/tidwall/jsonc"
)

// ToJSON strips comments from a .cson rule file and returns standard JSON.
// Full-line comments starting with '#' become blank lines; '//' and '/* */'
// comments and trailing commas are handled by jsonc. Line and column
// positions of the remaining text are preserved. A leading UTF-8 byte order
// mark is dropped.
func ToJSON(data []byte) []byte {
	data = bytes.TrimPrefix(data, bom)
	return jsonc.ToJSON(stripHashComments(data))
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// stripHashComments blanks every line whose first non-space character is '#'.
// The line terminator is kept so later positions do not move.
func stripHashComments(data []byte) []byte {
	if !bytes.Contains(data, []byte("#")) {
		return data
	}
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		line := data
		rest := []byte(nil)
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, rest = data[:i+1], data[i+1:]
		}
		data = rest

		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) > 0 && trimmed[0] == '#' {
			out = append(out, terminator(line)...)
			continue
		}
		out = append(out, line...)
	}
	return out
}

// terminator returns the line ending of line, if any.
func terminator(line []byte) []byte {
	switch {
	case bytes.HasSuffix(line, []byte("\r\n")):
		return []byte("\r\n")
	case bytes.HasSuffix(line, []byte("\n")):
		return []byte("\n")
	default:
		return nil
	}
}
